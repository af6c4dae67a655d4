package lineedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func char(c rune) KeyPress { return KeyPress{Key: RuneKey, Rune: c} }

func TestDecoder_Feed(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  []Event
	}{
		{name: "text", input: "ab", want: []Event{char('a'), char('b')}},
		{name: "utf-8", input: "é日", want: []Event{char('é'), char('日')}},
		{name: "enter", input: "x\r", want: []Event{char('x'), press(Enter)}},
		{name: "crlf", input: "\r\n", want: []Event{press(Enter), press(Enter)}},
		{name: "backspace", input: "\x7f\x08", want: []Event{press(Backspace), press(Backspace)}},
		{name: "ctrl+d", input: "\x04", want: []Event{ctrlD}},
		{name: "ctrl+c", input: "\x03", want: []Event{KeyPress{Key: RuneKey, Rune: 'c', Mod: ModCtrl}}},
		{name: "tab", input: "\t", want: []Event{press(Tab)}},
		{name: "nul ignored", input: "\x00a", want: []Event{char('a')}},
		{name: "arrows", input: "\x1b[D\x1b[C\x1b[A\x1b[B", want: []Event{press(Left), press(Right), press(Up), press(Down)}},
		{name: "alt+left variants", input: "\x1b[1;3D\x1bb\x1b\x1b[D", want: []Event{alt(Left), alt(Left), alt(Left)}},
		{name: "alt+right variants", input: "\x1b[1;3C\x1bf\x1b\x1b[C", want: []Event{alt(Right), alt(Right), alt(Right)}},
		{name: "delete", input: "\x1b[3~", want: []Event{press(Delete)}},
		{name: "home end", input: "\x1b[H\x1b[F", want: []Event{press(Home), press(End)}},
		{name: "alt+rune", input: "\x1bx", want: []Event{KeyPress{Key: RuneKey, Rune: 'x', Mod: ModAlt}}},
		{name: "unknown csi", input: "\x1b[99;99Xa", want: []Event{char('a')}},
		{name: "unknown ss3", input: "\x1bOZa", want: []Event{char('a')}},
		{name: "invalid utf-8", input: "\xffa", want: []Event{char('a')}},
		{name: "paste", input: "\x1b[200~hello\r\nworld\x1b[201~z", want: []Event{Paste{Data: []byte("hello\r\nworld")}, char('z')}},
		{name: "empty paste", input: "\x1b[200~\x1b[201~", want: []Event{Paste{Data: []byte{}}}},
		{name: "x10 mouse", input: "\x1b[M !!a", want: []Event{Mouse{Raw: []byte("\x1b[M !!")}, char('a')}},
		{name: "sgr mouse", input: "\x1b[<0;10;5Mb\x1b[<0;10;5m", want: []Event{
			Mouse{Raw: []byte("\x1b[<0;10;5M")}, char('b'), Mouse{Raw: []byte("\x1b[<0;10;5m")},
		}},
		{name: "sync", input: "a\x1b_lineedit:sync:42\x1b\\b", want: []Event{char('a'), SyncRequest{ID: "42"}, char('b')}},
		{name: "other apc", input: "\x1b_other\x1b\\c", want: []Event{char('c')}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var d Decoder
			got := d.Feed([]byte(tc.input))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if d.Pending() {
				t.Errorf("unexpected pending input: %q", d.pending)
			}
		})
	}
}

func TestDecoder_SplitInput(t *testing.T) {
	for _, tc := range []struct {
		name   string
		chunks []string
		want   []Event
	}{
		{name: "utf-8", chunks: []string{"\xe6\x97", "\xa5"}, want: []Event{char('日')}},
		{name: "csi", chunks: []string{"\x1b[", "3~"}, want: []Event{press(Delete)}},
		{name: "alt csi", chunks: []string{"\x1b[1;", "3D"}, want: []Event{alt(Left)}},
		{name: "escape then sequence", chunks: []string{"\x1b", "[C"}, want: []Event{press(Right)}},
		{name: "paste", chunks: []string{"\x1b[20", "0~ab", "c\x1b[20", "1~"}, want: []Event{Paste{Data: []byte("abc")}}},
		{name: "sync", chunks: []string{"\x1b_lineedit:sy", "nc:7\x1b", "\\"}, want: []Event{SyncRequest{ID: "7"}}},
		{name: "mouse", chunks: []string{"\x1b[M", " !", "!"}, want: []Event{Mouse{Raw: []byte("\x1b[M !!")}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var d Decoder
			var got []Event
			for i, chunk := range tc.chunks {
				events := d.Feed([]byte(chunk))
				if i < len(tc.chunks)-1 && len(events) != 0 {
					t.Errorf("chunk %d: unexpected early events %#v", i, events)
				}
				got = append(got, events...)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecoder_Flush(t *testing.T) {
	var d Decoder
	if got := d.Feed([]byte{0x1b}); len(got) != 0 {
		t.Errorf("expected a lone escape to be held, got %#v", got)
	}
	if !d.Pending() {
		t.Error("expected pending input")
	}
	if diff := cmp.Diff([]Event{press(Escape)}, d.Flush()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if d.Pending() {
		t.Error("expected nothing pending after flush")
	}

	// incomplete sequences other than a lone escape are kept
	d.Feed([]byte("\x1b[1;"))
	if got := d.Flush(); got != nil {
		t.Errorf("expected nothing, got %#v", got)
	}
	if diff := cmp.Diff([]Event{alt(Left)}, d.Feed([]byte("3D"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecoder_OversizedSyncDropped(t *testing.T) {
	var d Decoder
	input := []byte(SyncPrefix)
	for len(input) <= maxSyncBufferSize {
		input = append(input, 'x')
	}
	if got := d.Feed(input); len(got) != 0 {
		t.Errorf("expected nothing, got %#v", got)
	}
	if diff := cmp.Diff([]Event{char('a')}, d.Feed([]byte("a"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestBuildSync(t *testing.T) {
	if got := string(BuildSyncRequest("abc")); got != "\x1b_lineedit:sync:abc\x1b\\" {
		t.Errorf("unexpected request %q", got)
	}
	if got := string(BuildSyncAck("abc")); got != "\x1b_lineedit:sync-ack:abc\x1b\\" {
		t.Errorf("unexpected ack %q", got)
	}
}

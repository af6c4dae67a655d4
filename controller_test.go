package lineedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	istrings "github.com/joeycumines/go-lineedit/strings"
)

func typeText(c *Controller, s string) {
	for _, r := range s {
		c.Dispatch(KeyPress{Key: RuneKey, Rune: r})
	}
}

func press(k Key) KeyPress { return KeyPress{Key: k} }

func alt(k Key) KeyPress { return KeyPress{Key: k, Mod: ModAlt} }

var ctrlD = KeyPress{Key: RuneKey, Rune: 'd', Mod: ModCtrl}

func TestController_Initial(t *testing.T) {
	c := NewController()
	if c.State() != Prompting {
		t.Errorf("Should be %s, but got %s", Prompting, c.State())
	}
	if c.Session() != nil {
		t.Error("expected no session before Begin")
	}
	s := c.Begin(2)
	if s == nil || s.PromptOffset != 2 || s.Text() != "" || s.Caret() != 0 || s.HistoryCursor() != -1 {
		t.Errorf("unexpected session: %#v", s)
	}
	if c.Session() != s {
		t.Error("expected Begin to set the active session")
	}
}

func TestController_TypeCharacters(t *testing.T) {
	c := NewController()
	c.Begin(2)
	var got []Effect
	for _, r := range "hé" {
		got = append(got, c.Dispatch(KeyPress{Key: RuneKey, Rune: r})...)
	}
	want := []Effect{Repaint{Caret: 1}, Repaint{Caret: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Text() != "hé" {
		t.Errorf("Should be %#v, but got %#v", "hé", c.Text())
	}
}

func TestController_InsertMidLine(t *testing.T) {
	c := NewController()
	typeText(c, "ac")
	c.Dispatch(press(Left))
	got := c.Dispatch(KeyPress{Key: RuneKey, Rune: 'b'})
	if diff := cmp.Diff([]Effect{Repaint{Caret: 2}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Text() != "abc" {
		t.Errorf("Should be %#v, but got %#v", "abc", c.Text())
	}
}

func TestController_Enter(t *testing.T) {
	c := NewController()
	c.Begin(2)
	typeText(c, "ls")
	got := c.Dispatch(press(Enter))
	if diff := cmp.Diff([]Effect{Submit{Line: "ls"}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Text() != "" || c.Caret() != 0 {
		t.Errorf("buffer not cleared: %q@%d", c.Text(), c.Caret())
	}
	if diff := cmp.Diff([]string{"ls"}, c.History()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Session() != nil {
		t.Error("expected the session to end on submit")
	}
	if c.State() != Prompting {
		t.Errorf("Should be %s, but got %s", Prompting, c.State())
	}
}

func TestController_EnterEmptyLine(t *testing.T) {
	c := NewController()
	got := c.Dispatch(press(Enter))
	if diff := cmp.Diff([]Effect{Submit{Line: ""}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{""}, c.History()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	c = NewController(WithControllerPushEmptyLines(false))
	c.Dispatch(press(Enter))
	if len(c.History()) != 0 {
		t.Errorf("expected empty line not to be recorded, got %q", c.History())
	}
}

func TestController_ExitCommand(t *testing.T) {
	c := NewController()
	typeText(c, "exit")
	got := c.Dispatch(press(Enter))
	if diff := cmp.Diff([]Effect{Terminate{Reason: TerminateExitCommand}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.State() != Terminated {
		t.Errorf("Should be %s, but got %s", Terminated, c.State())
	}
	if len(c.History()) != 0 {
		t.Errorf("exit command recorded in history: %q", c.History())
	}

	c = NewController(WithControllerExitCommand("quit"))
	typeText(c, "exit")
	if diff := cmp.Diff([]Effect{Submit{Line: "exit"}}, c.Dispatch(press(Enter))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	c = NewController(WithControllerExitCommand(""))
	if diff := cmp.Diff([]Effect{Submit{Line: ""}}, c.Dispatch(press(Enter))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestController_CtrlD(t *testing.T) {
	c := NewController()
	c.Begin(2)
	typeText(c, "abc")
	got := c.Dispatch(ctrlD)
	if diff := cmp.Diff([]Effect{Terminate{Reason: TerminateEOF}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.State() != Terminated || c.Session() != nil {
		t.Errorf("unexpected state after Ctrl+D: %s", c.State())
	}
}

func TestController_TerminatedIgnoresEverything(t *testing.T) {
	c := NewController()
	c.Dispatch(ctrlD)
	for _, ev := range []Event{
		KeyPress{Key: RuneKey, Rune: 'a'},
		press(Enter),
		ctrlD,
		Resize{Cols: 1, Rows: 1},
		Paste{Data: []byte("x")},
	} {
		if got := c.Dispatch(ev); got != nil {
			t.Errorf("%#v: expected no effects, got %#v", ev, got)
		}
	}
	if c.Text() != "" {
		t.Errorf("buffer modified after termination: %q", c.Text())
	}
	if c.Begin(2) != nil {
		t.Error("expected Begin to fail once terminated")
	}
}

func TestController_OtherControlChordsIgnored(t *testing.T) {
	c := NewController()
	typeText(c, "ab")
	for _, r := range "acefxz" {
		if got := c.Dispatch(KeyPress{Key: RuneKey, Rune: r, Mod: ModCtrl}); got != nil {
			t.Errorf("ctrl+%c: expected no effects, got %#v", r, got)
		}
	}
	if c.Text() != "ab" || c.State() != Prompting {
		t.Errorf("unexpected state: %q %s", c.Text(), c.State())
	}
}

func TestController_AltRuneInserts(t *testing.T) {
	c := NewController()
	typeText(c, "ab")
	got := c.Dispatch(KeyPress{Key: RuneKey, Rune: 'x', Mod: ModAlt})
	if diff := cmp.Diff([]Effect{Repaint{Caret: 3}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got = c.Dispatch(KeyPress{Key: RuneKey, Rune: 'Y', Mod: ModAlt | ModShift})
	if diff := cmp.Diff([]Effect{Repaint{Caret: 4}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Text() != "abxY" {
		t.Errorf("Should be %q, but got %q", "abxY", c.Text())
	}
}

func TestController_NonPressIgnored(t *testing.T) {
	c := NewController()
	for _, kind := range []KeyKind{KeyRepeated, KeyReleased} {
		if got := c.Dispatch(KeyPress{Key: RuneKey, Rune: 'a', Kind: kind}); got != nil {
			t.Errorf("%s: expected no effects, got %#v", kind, got)
		}
	}
	if c.Text() != "" {
		t.Errorf("Should be %#v, but got %#v", "", c.Text())
	}
}

func TestController_Backspace(t *testing.T) {
	for _, tc := range []struct {
		name      string
		text      string
		lefts     int
		wantText  string
		wantCaret int
		effects   []Effect
	}{
		{name: "end", text: "abc", wantText: "ab", wantCaret: 2, effects: []Effect{Repaint{Caret: 2}}},
		{name: "middle", text: "abc", lefts: 1, wantText: "ac", wantCaret: 1, effects: []Effect{Repaint{Caret: 1}}},
		{name: "start", text: "abc", lefts: 3, wantText: "bc", wantCaret: 0, effects: []Effect{Repaint{Caret: 0}}},
		{name: "start before cluster", text: "éb", lefts: 2, wantText: "b", wantCaret: 0, effects: []Effect{Repaint{Caret: 0}}},
		{name: "cluster at end", text: "aé", wantText: "a", wantCaret: 1, effects: []Effect{Repaint{Caret: 1}}},
		{name: "cluster in middle", text: "aéb", lefts: 1, wantText: "ab", wantCaret: 1, effects: []Effect{Repaint{Caret: 1}}},
		{name: "flag", text: "x🇺🇸", wantText: "x", wantCaret: 1, effects: []Effect{Repaint{Caret: 1}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController()
			typeText(c, tc.text)
			for range tc.lefts {
				c.Dispatch(press(Left))
			}
			got := c.Dispatch(press(Backspace))
			if diff := cmp.Diff(tc.effects, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if c.Text() != tc.wantText || int(c.Caret()) != tc.wantCaret {
				t.Errorf("Should be %q@%d, but got %q@%d", tc.wantText, tc.wantCaret, c.Text(), c.Caret())
			}
		})
	}
}

func TestController_BackspaceRemovesWholeClusterAtEnd(t *testing.T) {
	for _, tc := range []struct {
		name     string
		text     string
		wantText string
	}{
		{name: "combining mark", text: "ae\u0301", wantText: "a"},
		{name: "combining mark only cluster", text: "e\u0301", wantText: ""},
		{name: "two combining marks", text: "xo\u0302\u0301", wantText: "x"},
		{name: "zwj sequence", text: "a👩\u200d💻", wantText: "a"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController()
			typeText(c, tc.text)
			got := c.Dispatch(press(Backspace))
			want := []Effect{Repaint{Caret: istrings.ByteNumber(len(tc.wantText))}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if c.Text() != tc.wantText || int(c.Caret()) != len(tc.wantText) {
				t.Errorf("Should be %q@%d, but got %q@%d", tc.wantText, len(tc.wantText), c.Text(), c.Caret())
			}
		})
	}
}

func TestController_BackspaceEmpty(t *testing.T) {
	c := NewController()
	if got := c.Dispatch(press(Backspace)); got != nil {
		t.Errorf("expected no effects, got %#v", got)
	}
}

func TestController_Delete(t *testing.T) {
	c := NewController()
	typeText(c, "aéb")
	if got := c.Dispatch(press(Delete)); got != nil {
		t.Errorf("expected no effects at the end, got %#v", got)
	}
	c.Dispatch(press(Home))
	c.Dispatch(press(Right))
	got := c.Dispatch(press(Delete))
	if diff := cmp.Diff([]Effect{Repaint{Caret: 1}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Text() != "ab" {
		t.Errorf("Should be %#v, but got %#v", "ab", c.Text())
	}
}

func TestController_LeftRight(t *testing.T) {
	c := NewController()
	typeText(c, "héllo")
	var got []Effect
	for range 3 {
		got = append(got, c.Dispatch(press(Left))...)
	}
	want := []Effect{Repaint{Caret: 5}, Repaint{Caret: 4}, Repaint{Caret: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := c.Dispatch(press(Right)); !cmp.Equal([]Effect{Repaint{Caret: 4}}, got) {
		t.Errorf("unexpected right: %#v", got)
	}

	c.Dispatch(press(Home))
	if got := c.Dispatch(press(Left)); got != nil {
		t.Errorf("expected left at 0 to do nothing, got %#v", got)
	}
	c.Dispatch(press(End))
	if got := c.Dispatch(press(Right)); got != nil {
		t.Errorf("expected right at the end to do nothing, got %#v", got)
	}
}

func TestController_HomeEnd(t *testing.T) {
	c := NewController()
	typeText(c, "abc")
	if diff := cmp.Diff([]Effect{MoveCaret{Caret: 0}}, c.Dispatch(press(Home))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Effect{Repaint{Caret: 3}}, c.Dispatch(press(End))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestController_WordMovement(t *testing.T) {
	c := NewController()
	typeText(c, "ab cd")
	if diff := cmp.Diff([]Effect{MoveCaret{Caret: 3}}, c.Dispatch(alt(Left))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Caret() != 3 {
		t.Errorf("Should be %#v, but got %#v", 3, c.Caret())
	}
	if diff := cmp.Diff([]Effect{MoveCaret{Caret: 0}}, c.Dispatch(alt(Left))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := c.Dispatch(alt(Left)); got != nil {
		t.Errorf("expected no effects at 0, got %#v", got)
	}
	if diff := cmp.Diff([]Effect{MoveCaret{Caret: 3}}, c.Dispatch(alt(Right))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Effect{MoveCaret{Caret: 5}}, c.Dispatch(alt(Right))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := c.Dispatch(alt(Right)); got != nil {
		t.Errorf("expected no effects at the end, got %#v", got)
	}
	if got := c.Dispatch(KeyPress{Key: Left, Mod: ModCtrl}); got != nil {
		t.Errorf("expected ctrl+left to be ignored, got %#v", got)
	}
}

func TestController_HistoryNavigation(t *testing.T) {
	c := NewController()
	for _, line := range []string{"one", "two"} {
		typeText(c, line)
		c.Dispatch(press(Enter))
	}

	if diff := cmp.Diff([]Effect{Repaint{Caret: 3}}, c.Dispatch(press(Up))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Text() != "two" {
		t.Errorf("Should be %#v, but got %#v", "two", c.Text())
	}
	c.Dispatch(press(Up))
	if c.Text() != "one" {
		t.Errorf("Should be %#v, but got %#v", "one", c.Text())
	}
	// oldest reached
	if got := c.Dispatch(press(Up)); got != nil {
		t.Errorf("expected no effects, got %#v", got)
	}
	c.Dispatch(press(Down))
	if c.Text() != "two" {
		t.Errorf("Should be %#v, but got %#v", "two", c.Text())
	}
	if diff := cmp.Diff([]Effect{Repaint{Caret: 0}}, c.Dispatch(press(Down))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Text() != "" {
		t.Errorf("Should be %#v, but got %#v", "", c.Text())
	}
	if got := c.Dispatch(press(Down)); got != nil {
		t.Errorf("expected no effects, got %#v", got)
	}
}

func TestController_HistoryUpNTimes(t *testing.T) {
	lines := []string{"a", "b", "c"}
	c := NewController()
	for _, line := range lines {
		typeText(c, line)
		c.Dispatch(press(Enter))
	}
	for range len(lines) {
		c.Dispatch(press(Up))
	}
	if c.Text() != "a" {
		t.Errorf("Should be %#v, but got %#v", "a", c.Text())
	}
	c.Dispatch(press(Up))
	if c.Text() != "a" {
		t.Errorf("Should be %#v, but got %#v", "a", c.Text())
	}
}

func TestController_HistoryEmpty(t *testing.T) {
	c := NewController()
	typeText(c, "draft")
	for _, k := range []Key{Up, Down} {
		if got := c.Dispatch(press(k)); got != nil {
			t.Errorf("%s: expected no effects, got %#v", k, got)
		}
	}
	if c.Text() != "draft" {
		t.Errorf("Should be %#v, but got %#v", "draft", c.Text())
	}
}

func TestController_WithHistory(t *testing.T) {
	h := NewHistory(2)
	h.Push("seeded")
	c := NewController(WithControllerHistory(h))
	c.Dispatch(press(Up))
	if c.Text() != "seeded" {
		t.Errorf("Should be %#v, but got %#v", "seeded", c.Text())
	}
}

func TestController_Resize(t *testing.T) {
	c := NewController()
	c.Begin(2)
	typeText(c, "keep")
	got := c.Dispatch(Resize{Cols: 100, Rows: 40})
	if diff := cmp.Diff([]Effect{Interrupt{Cols: 100, Rows: 40}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Session() != nil {
		t.Error("expected the session to end")
	}
	if c.Text() != "keep" || len(c.History()) != 0 {
		t.Errorf("resize must neither clear nor submit: %q %q", c.Text(), c.History())
	}
	if c.State() != Prompting {
		t.Errorf("Should be %s, but got %s", Prompting, c.State())
	}
}

func TestController_PasteAndMouse(t *testing.T) {
	c := NewController()
	got := c.Dispatch(Paste{Data: []byte("pasted")})
	got = append(got, c.Dispatch(Mouse{Raw: []byte("\x1b[M !!")})...)
	want := []Effect{
		Notice{Kind: NoticePaste, Data: []byte("pasted")},
		Notice{Kind: NoticeMouse, Data: []byte("\x1b[M !!")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Text() != "" {
		t.Errorf("paste must not be inserted, got %q", c.Text())
	}
}

func TestController_IgnoredKeys(t *testing.T) {
	c := NewController()
	typeText(c, "x")
	for _, k := range []Key{Tab, BackTab, Escape, Insert, PageUp, PageDown, F1, NotDefined} {
		if got := c.Dispatch(press(k)); got != nil {
			t.Errorf("%s: expected no effects, got %#v", k, got)
		}
	}
	if got := c.Dispatch(SyncRequest{ID: "1"}); got != nil {
		t.Errorf("expected sync requests to be ignored, got %#v", got)
	}
}

func TestStateString(t *testing.T) {
	for _, tc := range []struct {
		s    State
		want string
	}{
		{Prompting, "Prompting"},
		{Terminated, "Terminated"},
		{State(9), "State(?)"},
	} {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("Should be %#v, but got %#v", tc.want, got)
		}
	}
}

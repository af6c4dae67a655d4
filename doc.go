// Package lineedit is the editing core of an interactive, readline-like
// command line prompt.
//
// A [TextBuffer] holds the line being typed and a caret that always sits on a
// grapheme cluster boundary. A [History] keeps a bounded, most-recent-first
// list of submitted lines and a browse cursor. The [Controller] is a state
// machine that consumes input [Event] values, mutates the buffer and history,
// and returns [Effect] values describing what should be drawn. None of these
// touch the terminal, so they can be driven directly from tests.
//
// [Prompt] wires the controller to a terminal: it reads events from an
// [InputSource], applies effects through a [Renderer] writing to a
// [ConsoleWriter], and owns the raw mode lifecycle.
//
//	p, err := lineedit.New(func(line string) {
//		fmt.Println("Our buffer: " + line)
//	})
//	if err != nil {
//		return err
//	}
//	return p.Run(ctx)
package lineedit

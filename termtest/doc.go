// Package termtest drives line editing sessions through a pseudo-terminal, so
// that tests observe exactly what a user would: raw mode, escape sequences,
// and redraws included.
//
// There are two entry points:
//
//  1. Console: an external process attached to a PTY, see NewConsole.
//  2. Harness: a lineedit.Prompt running in-process against the slave end of a
//     PTY, see NewHarness.
//
// Both expose the same interaction surface. Output is captured continuously;
// a Snapshot marks a position in it, and Await/Expect wait for a Condition to
// hold on everything written after that position:
//
//	h, err := termtest.NewHarness(ctx)
//	if err != nil {
//		t.Fatal(err)
//	}
//	defer h.Close()
//
//	h.RunPrompt(nil)
//	c := h.Console()
//	snap := c.Snapshot()
//	if err := c.SendSync(ctx, "a", "b", "left", "alt+left"); err != nil {
//		t.Fatal(err)
//	}
//	err = c.Expect(ctx, snap, termtest.Contains("ab"), "typed text")
//
// SendSync and WriteSync use the in-band sync protocol (see
// lineedit.SyncPrefix) to wait until the prompt has processed and drawn the
// input, which removes the need for sleeps.
package termtest

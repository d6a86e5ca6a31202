// Package cli provides the terminal front ends of degreeclass.
//
// [Shell] is the default line-based loop: it prints the option menu, reads a
// single-character command and hands it to [Shell.Dispatch], which maps every
// [Command] to exactly one action. Unrecognized input is [CommandUnknown] and
// does nothing. Record entry prompts for the five fields in order and starts
// over from the first field whenever one is rejected.
//
// Interrupts arrive on a channel passed with [WithInterrupts]. An interrupt at
// the menu ends the shell; an interrupt during record entry only abandons the
// entry.
//
// [RunMenu] offers the same commands through a [Bubbletea] list styled with
// [Lipgloss], dispatching each choice through the same shell.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli

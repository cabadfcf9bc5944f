// Package tui renders the algorithm in the terminal using Bubble Tea.
//
// The screen shows the 8-cell grid with a current arrow above and a target
// arrow below, a caption, the controls and the listing with the active
// lines marked.
//
// # Key Bindings
//
//	a       - Toggle manual / automated control
//	s/Space - Step (manual only)
//	r       - Reset to a new list (manual only)
//	t       - Cycle color themes
//	?       - Show full help
//	q       - Quit
//
// Automated control advances one event every [autoplay.DefaultPeriod].
package tui

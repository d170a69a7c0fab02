// Package tui shows a running simulation in the terminal.
//
// The raster frame is downsampled onto a braille [Canvas] (2x4 dots per
// cell) and drawn next to a sidebar with live statistics, using Bubble Tea.
//
// # Key Bindings
//
//	T          - Cycle sidebar themes
//	WASD/arrow - Move the cursor (when enabled)
//	Q/Esc      - Quit
package tui

// Package terminal adapts a tcell screen to the cell-buffer interface used by the renderer.
//
// The renderer composites a row-major []Cell and hands it to Flush; input
// arrives as Event values translated from tcell key and resize events. Tests
// drive the same code against tcell's simulation screen.
package terminal

// Package lsystem expands string-rewriting grammars (L-systems) and
// interprets the result with turtle graphics.
//
//   - [Expand]: deterministic parallel rewriting of an axiom
//   - [ExpandStochastic]: rewriting with weighted alternative productions
//   - [Interpret]: turtle interpretation into a [fractal.PointSequence]
//   - [System]: a grammar bound to an iteration count, caching its program
//
// # Turtle alphabet
//
//	F, G  move forward by one step and record the new position
//	f     move forward without recording
//	+     turn clockwise by the turn angle (heading decreases)
//	-     turn counter-clockwise by the turn angle (heading increases)
//	[     push position and heading
//	]     pop position and heading, record the restored position
//
// Any other symbol is a no-op, so grammars are free to use placeholder
// variables such as X and Y.
//
// Headings are measured in a y-up frame from the positive x axis.
package lsystem

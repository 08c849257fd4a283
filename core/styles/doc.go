// Package styles implements the visual vocabulary of the renderer: one
// drawing strategy per style variant, for both data modules and the three
// finder ("eye") patterns.
//
// Styles are registered once in a strategy table keyed by Variant, so adding
// a style is additive: implement Drawer, call Register. Lookup never fails;
// an unrecognized variant (for example one read from stored configuration
// that predates a style) falls back to the flat-square default.
//
// Every drawer receives an explicit Context carrying the canvas, the resolved
// colors, and the module pixel size. Drawers scope any canvas-state change
// (fill color, line width, transforms) inside their own Push/Pop block so
// nothing leaks between cells.
//
// Eye patterns are always drawn after all data modules; when the two overlap,
// the eye wins. Several decorative variants deliberately pair their module
// shape with a plain rounded frame and circular pupil, because scanners
// locate the code by its eyes: keeping those conventional preserves
// scannability even when the data modules are exotic.
package styles

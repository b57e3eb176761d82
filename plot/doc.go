// Package plot renders 2D slices of stencil fields.
//
// Slice brings a field back to canonical (Z,Y,X) order and extracts the
// (Y,X) plane at a given Z level. Render draws that plane as a heat map with
// a fixed [-1, 1] colour scale, and ASCII prints it for terminals.
package plot

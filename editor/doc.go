// Package editor provides a Bubble Tea text editor component that displays
// its document in bionic-reading form.
//
// After every edit the document is re-rendered through the bionic package:
// the caret is taken as a flat offset, the markup and node tree are rebuilt,
// and the caret is located again inside the new tree. Layout, cursor drawing
// and mouse hit testing all work on that tree.
package editor

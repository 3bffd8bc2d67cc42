// Package bionic converts plain text into bionic-reading markup: every word
// has its leading half emphasized.
//
// Lengths and offsets are counted in grapheme clusters. The rendered markup is
// lossless (concatenating all segment parts yields the input) and is exposed
// both as a flat segment list and as an explicit node tree for caret mapping.
package bionic

// Package grapheme addresses text by extended grapheme cluster, the unit
// mono uses for offsets, word lengths, and cursor movement.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop distance used when none is configured.
const DefaultTabWidth = 4

// Split breaks text into grapheme clusters.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

func Join(clusters []string) string {
	return strings.Join(clusters, "")
}

// IsSpace reports whether every rune of cluster is Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNewline reports whether cluster ends a line.
func IsNewline(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n"
}

// Width returns the cell width of cluster drawn at column col. A tab
// reaches the next multiple of tabWidth.
func Width(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = DefaultTabWidth
		}
		return tabWidth - col%tabWidth
	}
	if w := runewidth.StringWidth(cluster); w > 0 {
		return w
	}
	return max(uniseg.StringWidth(cluster), 0)
}

package bionic

import (
	"errors"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/mono/internal/grapheme"
)

// ErrInvalidArgument is returned for input that is not valid UTF-8 text.
var ErrInvalidArgument = errors.New("bionic: invalid argument")

// Segment is one word of rendered markup together with the whitespace around
// it. Only the last segment of a markup carries Trailing whitespace.
type Segment struct {
	Leading  string
	Bold     string
	Rest     string
	Trailing string
}

// Word returns the word without surrounding whitespace.
func (s Segment) Word() string { return s.Bold + s.Rest }

// Text returns the segment's plain text, emphasis removed.
func (s Segment) Text() string { return s.Leading + s.Bold + s.Rest + s.Trailing }

// Markup is an ordered list of segments.
type Markup []Segment

// Plain reconstructs the source text.
func (m Markup) Plain() string {
	var sb strings.Builder
	for _, s := range m {
		sb.WriteString(s.Text())
	}
	return sb.String()
}

// HTML renders the markup with <strong> around each emphasized prefix.
func (m Markup) HTML() string {
	var sb strings.Builder
	for _, s := range m {
		sb.WriteString(html.EscapeString(s.Leading))
		if s.Bold != "" {
			sb.WriteString("<strong>")
			sb.WriteString(html.EscapeString(s.Bold))
			sb.WriteString("</strong>")
		}
		sb.WriteString(html.EscapeString(s.Rest))
		sb.WriteString(html.EscapeString(s.Trailing))
	}
	return sb.String()
}

// BoldLength returns the emphasized prefix length for a word of n clusters.
func BoldLength(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 1) / 2
}

// Render splits text on whitespace runs and emphasizes the first
// ceil(len/2) clusters of every word. Whitespace-only text yields a single
// segment holding it as Leading; empty text yields no segments.
func Render(text string) (Markup, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidArgument
	}
	if text == "" {
		return nil, nil
	}

	var (
		out    Markup
		space  strings.Builder
		word   []string
		inWord bool
	)
	flush := func() {
		n := BoldLength(len(word))
		out = append(out, Segment{
			Leading: space.String(),
			Bold:    grapheme.Join(word[:n]),
			Rest:    grapheme.Join(word[n:]),
		})
		space.Reset()
		word = word[:0]
	}

	for _, c := range grapheme.Split(text) {
		if grapheme.IsSpace(c) {
			if inWord {
				flush()
				inWord = false
			}
			space.WriteString(c)
			continue
		}
		inWord = true
		word = append(word, c)
	}
	if inWord {
		flush()
	}

	if space.Len() > 0 {
		if len(out) == 0 {
			return Markup{{Leading: space.String()}}, nil
		}
		out[len(out)-1].Trailing = space.String()
	}
	return out, nil
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

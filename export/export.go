// Package export turns the current document into downloadable files.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/iw2rmb/mono/bionic"
	"github.com/iw2rmb/mono/prefs"
)

const (
	TextFileName = "mono-export.txt"
	HTMLFileName = "mono-export.html"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>mono</title></head>
<body style="margin:0;background:{{.Background}};color:{{.Foreground}}">
<div style="white-space:pre-wrap;max-width:70ch;margin:8rem auto;font-family:{{.Font}};font-size:{{.FontSize}}px;line-height:{{.LineHeight}}">
{{- range .Markup}}{{.Leading}}{{if .Bold}}<strong>{{.Bold}}</strong>{{end}}{{.Rest}}{{.Trailing}}{{end -}}
</div>
</body></html>
`))

type pageData struct {
	Background string
	Foreground string
	Font       string
	FontSize   int
	LineHeight string
	Markup     bionic.Markup
}

// Blob is a named file payload.
type Blob struct {
	Name string
	MIME string
	Data []byte
}

// Text returns the document verbatim as a plain-text blob.
func Text(text string) Blob {
	return Blob{Name: TextFileName, MIME: "text/plain", Data: []byte(text)}
}

// HTML returns a standalone page with the bionic markup of text, styled with
// the given preferences.
func HTML(text string, p prefs.Preferences) (Blob, error) {
	m, err := bionic.Render(text)
	if err != nil {
		return Blob{}, fmt.Errorf("render markup: %w", err)
	}

	d := pageData{
		Background: "#000",
		Foreground: "#f5f5f5",
		Font:       string(p.FontFamily),
		FontSize:   p.FontSize,
		LineHeight: "2",
		Markup:     m,
	}
	if p.Theme == prefs.ThemeLight {
		d.Background, d.Foreground = "#fff", "#000"
	}
	if p.Density == prefs.DensityDense {
		d.LineHeight = "1.6"
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, d); err != nil {
		return Blob{}, fmt.Errorf("render page: %w", err)
	}
	return Blob{Name: HTMLFileName, MIME: "text/html", Data: buf.Bytes()}, nil
}

// Write stores b in dir, creating dir when missing, and returns the file path.
func Write(dir string, b Blob) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, b.Name)
	if err := os.WriteFile(path, b.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", b.Name, err)
	}
	return path, nil
}

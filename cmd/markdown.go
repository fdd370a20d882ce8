package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
)

// printMarkdown prints md rendered for the terminal in the configured style.
// It falls back to the raw markdown when rendering fails.
func printMarkdown(md string) {
	out, err := renderMarkdown(md, Global.Style)
	if err != nil {
		log.Println("warning, cannot render markdown:", err)
		out = md
	}
	fmt.Print(out)
}

// renderMarkdown renders md with a glamour style. The "raw" style returns md unchanged.
func renderMarkdown(md, style string) (string, error) {
	var opt glamour.TermRendererOption
	switch style {
	case "raw":
		return md, nil
	case "", "auto":
		opt = glamour.WithAutoStyle()
	default:
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// Package renderer turns net position and affordability computations into
// markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/networth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.md
var templates embed.FS

// printer prints plain numbers with thousands separators.
var printer = message.NewPrinter(language.English)

// RenderPosition renders the net position report.
func RenderPosition(p *Position) string {
	partials := map[string]string{
		"position_title":  "position_title.md",
		"position_assets": "position_assets.md",
	}
	return renderTemplate("position", "position.md", partials, p)
}

// RenderAfford renders the affordability report.
func RenderAfford(a *Afford) string {
	partials := map[string]string{
		"afford_title":     "afford_title.md",
		"afford_scenarios": "afford_scenarios.md",
	}
	if !a.Available {
		partials["afford_scenarios"] = "afford_missing.md"
	}
	return renderTemplate("afford", "afford.md", partials, a)
}

// RenderAssets renders the list of assets.
func RenderAssets(l *AssetList) string {
	return renderTemplate("assets", "assets.md", nil, l)
}

// RenderExamples renders the catalog of examples.
func RenderExamples(l *ExampleList) string {
	return renderTemplate("examples", "examples.md", nil, l)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// perMonth formats a repayment like "$5,200 p/m".
func perMonth(m networth.Money) string {
	return printer.Sprintf("%s%d p/m", m.Symbol(), m.Round().Decimal().IntPart())
}

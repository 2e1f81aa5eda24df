package tile

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

const (
	// Size is the fixed edge length of a tile window in pixels
	Size = 150
	// GlyphPoints is the glyph font size
	GlyphPoints = 72
	// LabelPoints is the label font size
	LabelPoints = 16
	// Spacing separates the glyph from the label in pixels
	Spacing = 10
)

// inlinePolicy keeps the inline text markup a label or glyph may carry and
// strips everything else.
var inlinePolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "u", "s", "small", "big", "sub", "sup", "span")
	return p
}()

var page = template.Must(template.New("tile").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
html, body { margin: 0; width: 100%; height: 100%; overflow: hidden; }
#tile {
  width: 100%; height: 100%; margin: 0; padding: 0; cursor: pointer;
  display: flex; flex-direction: column; align-items: center; justify-content: center;
  gap: {{.Spacing}}px;
}
.glyph { font-family: sans-serif; font-size: {{.GlyphPoints}}pt; line-height: 1; }
.label { font-family: sans-serif; font-weight: bold; font-size: {{.LabelPoints}}pt; }
</style>
</head>
<body>
<button id="tile" type="button" onclick="tileActivate()">
<span class="glyph">{{.Glyph}}</span>
<span class="label">{{.Label}}</span>
</button>
</body>
</html>
`))

type pageData struct {
	Glyph       template.HTML
	Label       template.HTML
	GlyphPoints int
	LabelPoints int
	Spacing     int
}

// Render builds the HTML shown inside a tile: the glyph over a bold label,
// both inside a button filling the window.
func Render(label, glyph string) (string, error) {
	var buf bytes.Buffer
	err := page.Execute(&buf, pageData{
		Glyph:       template.HTML(inlinePolicy.Sanitize(glyph)),
		Label:       template.HTML(inlinePolicy.Sanitize(label)),
		GlyphPoints: GlyphPoints,
		LabelPoints: LabelPoints,
		Spacing:     Spacing,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

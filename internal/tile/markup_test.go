package tile

import (
	"strings"
	"testing"
)

func TestRender_Layout(t *testing.T) {
	html, err := Render("Mote", "🖥️")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		`<span class="glyph">🖥️</span>`,
		`<span class="label">Mote</span>`,
		"font-size: 72pt",
		"font-weight: bold; font-size: 16pt",
		"flex-direction: column",
		`<button id="tile"`,
		`onclick="tileActivate()"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}

	if strings.Index(html, `class="glyph"`) > strings.Index(html, `class="label"`) {
		t.Error("glyph must be rendered above the label")
	}
}

func TestRender_EmptyStrings(t *testing.T) {
	html, err := Render("", "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(html, `<span class="label"></span>`) {
		t.Error("empty label should render blank")
	}
}

func TestRender_InlineMarkup(t *testing.T) {
	html, err := Render("<i>Mote</i>", "<b>M</b>")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(html, "<i>Mote</i>") || !strings.Contains(html, "<b>M</b>") {
		t.Error("inline markup should be preserved")
	}
}

func TestRender_StripsActiveContent(t *testing.T) {
	html, err := Render(`<script>alert(1)</script>ok<img src=x onerror=alert(1)>`, "🌐")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(html, "alert(1)") || strings.Contains(html, "<img") {
		t.Errorf("active content survived sanitising: %s", html)
	}
	if !strings.Contains(html, `<span class="label">ok</span>`) {
		t.Error("plain text should survive sanitising")
	}
}

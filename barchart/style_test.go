package barchart

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func foreground(t *testing.T, style lipgloss.Style) string {
	t.Helper()
	color, ok := style.GetForeground().(lipgloss.Color)
	if !ok {
		t.Fatalf("foreground %v is not a lipgloss.Color", style.GetForeground())
	}
	return string(color)
}

func TestParseStyleNamedColors(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"blue", "4"},
		{"bright_green", "10"},
		{"red", "1"},
		{"bright_white", "15"},
	}
	for _, tc := range cases {
		if got := foreground(t, ParseStyle(tc.token)); got != tc.want {
			t.Errorf("ParseStyle(%q) foreground = %q, want %q", tc.token, got, tc.want)
		}
	}
}

func TestParseStylePassthrough(t *testing.T) {
	if got := foreground(t, ParseStyle("105")); got != "105" {
		t.Errorf("ParseStyle(\"105\") foreground = %q, want %q", got, "105")
	}
	if got := foreground(t, ParseStyle("#ff79c6")); got != "#ff79c6" {
		t.Errorf("ParseStyle(\"#ff79c6\") foreground = %q, want %q", got, "#ff79c6")
	}
}

func TestParseStyleModifiers(t *testing.T) {
	style := ParseStyle("bold red")
	if !style.GetBold() {
		t.Error("ParseStyle(\"bold red\") should be bold")
	}
	if got := foreground(t, style); got != "1" {
		t.Errorf("ParseStyle(\"bold red\") foreground = %q, want %q", got, "1")
	}

	if !ParseStyle("underline").GetUnderline() {
		t.Error("ParseStyle(\"underline\") should be underlined")
	}
}

func TestParseStyleEmpty(t *testing.T) {
	style := ParseStyle("")
	if style.GetBold() {
		t.Error("empty token should resolve to the zero style")
	}
	if style.Render("plain") != "plain" {
		t.Errorf("empty style should render text unchanged, got %q", style.Render("plain"))
	}
}

func TestDefaultPaletteCycles(t *testing.T) {
	chart, err := FromValues([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if err != nil {
		t.Fatalf("FromValues() error: %v", err)
	}

	// ninth and tenth bars wrap back to the start of the 8-color palette
	if got, want := foreground(t, chart.barStyles[8]), foreground(t, chart.barStyles[0]); got != want {
		t.Errorf("bar 8 foreground = %q, want palette start %q", got, want)
	}
	if got, want := foreground(t, chart.barStyles[9]), foreground(t, chart.barStyles[1]); got != want {
		t.Errorf("bar 9 foreground = %q, want second palette color %q", got, want)
	}
	if foreground(t, chart.barStyles[0]) == foreground(t, chart.barStyles[1]) {
		t.Error("adjacent palette colors should differ")
	}
}

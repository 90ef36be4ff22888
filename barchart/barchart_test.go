package barchart

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// plain flattens rendered segments to unstyled text.
func plain(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func lines(segments []Segment) []string {
	text := strings.TrimSuffix(plain(segments), "\n")
	return strings.Split(text, "\n")
}

func TestNewEmptyData(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("New(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := FromValues(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("FromValues(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := FromMap(map[string]float64{}); !errors.Is(err, ErrEmptyData) {
		t.Errorf("FromMap(empty) error = %v, want ErrEmptyData", err)
	}
}

func TestNewNonEmptyAlwaysSucceeds(t *testing.T) {
	datasets := [][]Entry{
		{{Label: "a", Value: 1}},
		{{Label: "a", Value: -3}, {Label: "b", Value: -1}},
		{{Label: "", Value: 0}},
		{{Label: "dup", Value: 1}, {Label: "dup", Value: 2}},
	}
	for _, entries := range datasets {
		if _, err := New(entries); err != nil {
			t.Errorf("New(%v) unexpected error: %v", entries, err)
		}
	}
}

func TestFromValuesLabels(t *testing.T) {
	chart, err := FromValues([]float64{5, 10, 15})
	if err != nil {
		t.Fatalf("FromValues() error: %v", err)
	}

	entries := chart.Entries()
	want := []string{"0", "1", "2"}
	for i, label := range want {
		if entries[i].Label != label {
			t.Errorf("entry %d label = %q, want %q", i, entries[i].Label, label)
		}
	}
}

func TestFromMapSortsLabels(t *testing.T) {
	chart, err := FromMap(map[string]float64{"zebra": 1, "apple": 2, "mango": 3})
	if err != nil {
		t.Fatalf("FromMap() error: %v", err)
	}

	entries := chart.Entries()
	want := []string{"apple", "mango", "zebra"}
	for i, label := range want {
		if entries[i].Label != label {
			t.Errorf("entry %d label = %q, want %q", i, entries[i].Label, label)
		}
	}
}

func TestOrderPreserved(t *testing.T) {
	entries := []Entry{
		{Label: "third", Value: 3},
		{Label: "first", Value: 1},
		{Label: "second", Value: 2},
	}
	chart, err := New(entries)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	for i, got := range chart.Entries() {
		if got.Label != entries[i].Label {
			t.Errorf("entry %d label = %q, want %q", i, got.Label, entries[i].Label)
		}
	}
}

func TestEffectiveMaximumDerived(t *testing.T) {
	chart, err := New([]Entry{{Label: "a", Value: 3}, {Label: "b", Value: 7}, {Label: "c", Value: 5}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if chart.MaxValue() != 7 {
		t.Errorf("MaxValue() = %v, want 7", chart.MaxValue())
	}
}

func TestEffectiveMaximumExplicit(t *testing.T) {
	chart, err := New([]Entry{{Label: "a", Value: 3}}, WithMaxValue(100))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if chart.MaxValue() != 100 {
		t.Errorf("MaxValue() = %v, want 100", chart.MaxValue())
	}
}

func TestEffectiveMaximumCoercion(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
	}{
		{"explicit zero", []Option{WithMaxValue(0)}},
		{"explicit negative", []Option{WithMaxValue(-5)}},
		{"derived from all-negative data", nil},
	}
	for _, tc := range cases {
		chart, err := New([]Entry{{Label: "a", Value: -2}, {Label: "b", Value: -1}}, tc.opts...)
		if err != nil {
			t.Fatalf("%s: New() error: %v", tc.name, err)
		}
		if chart.MaxValue() != 1.0 {
			t.Errorf("%s: MaxValue() = %v, want 1.0", tc.name, chart.MaxValue())
		}
	}
}

// A non-positive maximum must render exactly like a maximum of one.
func TestNonPositiveMaximumEquivalentToOne(t *testing.T) {
	entries := []Entry{{Label: "a", Value: 0.25}, {Label: "b", Value: 0.5}}
	opts := Options{MaxWidth: 40}

	coerced, err := New(entries, WithMaxValue(-3))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	unit, err := New(entries, WithMaxValue(1))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if plain(coerced.Render(opts)) != plain(unit.Render(opts)) {
		t.Error("chart with max -3 should render identically to max 1")
	}
}

func TestRenderDeterministic(t *testing.T) {
	chart, err := New(
		[]Entry{{Label: "a", Value: 1.5}, {Label: "bb", Value: 3}},
		WithBarStyles("red", "green"),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	opts := Options{MaxWidth: 50, Height: 8}
	first := chart.Render(opts)
	second := chart.Render(opts)

	if len(first) != len(second) {
		t.Fatalf("repeat render segment count %d != %d", len(second), len(first))
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("segment %d text %q != %q", i, second[i].Text, first[i].Text)
		}
	}
}

func TestMeasureFixedWidth(t *testing.T) {
	chart, err := New([]Entry{{Label: "a", Value: 1}}, WithWidth(30))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	m := chart.Measure(Options{MaxWidth: 120})
	if m.Minimum != 30 || m.Maximum != 30 {
		t.Errorf("Measure() = {%d %d}, want {30 30}", m.Minimum, m.Maximum)
	}
}

func TestMeasureFillWidth(t *testing.T) {
	chart, err := New([]Entry{{Label: "a", Value: 1}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	m := chart.Measure(Options{MaxWidth: 120})
	if m.Minimum != 20 || m.Maximum != 120 {
		t.Errorf("Measure() = {%d %d}, want {20 120}", m.Minimum, m.Maximum)
	}
}

func TestBarStyleCycling(t *testing.T) {
	chart, err := FromValues([]float64{1, 2, 3, 4, 5}, WithBarStyles("red", "green"))
	if err != nil {
		t.Fatalf("FromValues() error: %v", err)
	}

	fg := func(i int) string {
		color, ok := chart.barStyles[i].GetForeground().(lipgloss.Color)
		if !ok {
			t.Fatalf("bar %d foreground is not a color", i)
		}
		return string(color)
	}

	red := ParseStyle("red")
	green := ParseStyle("green")
	wantRed := string(red.GetForeground().(lipgloss.Color))
	wantGreen := string(green.GetForeground().(lipgloss.Color))

	for _, i := range []int{0, 2, 4} {
		if fg(i) != wantRed {
			t.Errorf("bar %d foreground = %q, want first style %q", i, fg(i), wantRed)
		}
	}
	for _, i := range []int{1, 3} {
		if fg(i) != wantGreen {
			t.Errorf("bar %d foreground = %q, want second style %q", i, fg(i), wantGreen)
		}
	}
}

package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/young1lin/termchart/barchart"
)

func TestFromArgsPairs(t *testing.T) {
	chart, err := FromArgs([]string{"cpu=42.5", "mem=17"})
	if err != nil {
		t.Fatalf("FromArgs() error: %v", err)
	}

	if len(chart.Bars) != 2 {
		t.Fatalf("parsed %d bars, want 2", len(chart.Bars))
	}
	if chart.Bars[0].Label != "cpu" || chart.Bars[0].Value != 42.5 {
		t.Errorf("bar 0 = %+v, want cpu=42.5", chart.Bars[0])
	}
	if chart.Bars[1].Label != "mem" || chart.Bars[1].Value != 17 {
		t.Errorf("bar 1 = %+v, want mem=17", chart.Bars[1])
	}
}

func TestFromArgsBareValues(t *testing.T) {
	chart, err := FromArgs([]string{"3", "1", "4"})
	if err != nil {
		t.Fatalf("FromArgs() error: %v", err)
	}

	want := []Bar{{Label: "0", Value: 3}, {Label: "1", Value: 1}, {Label: "2", Value: 4}}
	for i, bar := range want {
		if chart.Bars[i] != bar {
			t.Errorf("bar %d = %+v, want %+v", i, chart.Bars[i], bar)
		}
	}
}

func TestFromArgsBadNumber(t *testing.T) {
	if _, err := FromArgs([]string{"cpu=high"}); err == nil {
		t.Error("FromArgs() with non-numeric value should fail")
	}
	if _, err := FromArgs([]string{"nonsense"}); err == nil {
		t.Error("FromArgs() with non-numeric bare argument should fail")
	}
}

func TestDecode(t *testing.T) {
	chart, err := Decode(`
width = 40
max_value = 100.0
show_values = false
bar_width = 2
vertical = true
height = 6
bar_styles = ["red", "green"]

[[bars]]
label = "cpu"
value = 81.5

[[bars]]
label = "mem"
value = 54.0
`)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if chart.Width != 40 {
		t.Errorf("Width = %d, want 40", chart.Width)
	}
	if chart.MaxValue == nil || *chart.MaxValue != 100.0 {
		t.Errorf("MaxValue = %v, want 100.0", chart.MaxValue)
	}
	if chart.ShowValues == nil || *chart.ShowValues {
		t.Error("ShowValues should decode to false")
	}
	if !chart.Vertical || chart.Height != 6 || chart.BarWidth != 2 {
		t.Errorf("geometry = vertical=%v height=%d bar_width=%d", chart.Vertical, chart.Height, chart.BarWidth)
	}
	if len(chart.Bars) != 2 || chart.Bars[0].Label != "cpu" {
		t.Errorf("bars = %+v", chart.Bars)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	data := "[[bars]]\nlabel = \"a\"\nvalue = 1.0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	chart, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(chart.Bars) != 1 || chart.Bars[0].Label != "a" {
		t.Errorf("bars = %+v", chart.Bars)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte("wdith = 40\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "wdith") {
		t.Errorf("Load() error = %v, want unknown key error naming %q", err, "wdith")
	}
}

func TestBuild(t *testing.T) {
	chart, err := Decode(`
max_value = 4.0

[[bars]]
label = "a"
value = 2.0
`)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	built, err := chart.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if built.MaxValue() != 4.0 {
		t.Errorf("MaxValue() = %v, want 4.0", built.MaxValue())
	}
}

func TestBuildEmptyFails(t *testing.T) {
	chart := &Chart{}
	if _, err := chart.Build(); err == nil {
		t.Error("Build() of empty definition should fail")
	}
}

func TestBuildExtraOptionsOverride(t *testing.T) {
	chart := &Chart{Bars: []Bar{{Label: "a", Value: 1}}, Vertical: false}
	built, err := chart.Build(barchart.WithMaxValue(10))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if built.MaxValue() != 10 {
		t.Errorf("MaxValue() = %v, want override 10", built.MaxValue())
	}
}

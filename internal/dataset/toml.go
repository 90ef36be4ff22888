package dataset

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Load reads a chart definition from a TOML file.
func Load(path string) (*Chart, error) {
	var chart Chart
	meta, err := toml.DecodeFile(path, &chart)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load %s: unknown key %q", path, undecoded[0].String())
	}
	return &chart, nil
}

// Decode parses a chart definition from TOML source text.
func Decode(data string) (*Chart, error) {
	var chart Chart
	if _, err := toml.Decode(data, &chart); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return &chart, nil
}

package assumption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

// Load parses an assumption override document on top of the defaults.
// Keys absent from the document keep their default values, so an override
// file only needs to name what it changes.
func Load(data []byte, format string) (Assumptions, error) {
	a := Default()

	switch strings.ToLower(format) {
	case "hjson":
		// Analyst-edited assumption files carry comments; HJSON tolerates
		// them where strict YAML/JSON would not.
		if err := hjson.Unmarshal(data, &a); err != nil {
			return Assumptions{}, fmt.Errorf("failed to parse hjson assumptions: %w", err)
		}
	case "yaml", "yml", "":
		if err := yaml.Unmarshal(data, &a); err != nil {
			return Assumptions{}, fmt.Errorf("failed to parse yaml assumptions: %w", err)
		}
	default:
		return Assumptions{}, fmt.Errorf("unsupported assumptions format %q", format)
	}

	if err := a.Validate(); err != nil {
		return Assumptions{}, fmt.Errorf("invalid assumptions: %w", err)
	}
	return a, nil
}

// LoadFile reads an assumption file, picking the format from the extension
// (.hjson, .yaml, .yml).
func LoadFile(path string) (Assumptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Assumptions{}, fmt.Errorf("failed to read assumptions file: %w", err)
	}

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	return Load(data, format)
}

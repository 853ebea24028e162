package catalogue

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-dispersion/optics/material"
)

// ReadFile reads a record, choosing the format from the extension:
// .yml and .yaml are YAML, .csv is comma separated and .txt is
// whitespace separated.
func ReadFile(path string) (material.Record, error) {
	var read func(*os.File) (material.Record, error)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		read = func(f *os.File) (material.Record, error) { return ReadYAML(f) }
	case ".csv":
		read = func(f *os.File) (material.Record, error) { return ReadTable(f, ',') }
	case ".txt":
		read = func(f *os.File) (material.Record, error) { return ReadTable(f, 0) }
	default:
		return material.Record{}, fmt.Errorf("%w: %q (want .yml, .yaml, .csv or .txt)", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return material.Record{}, err
	}
	defer f.Close()

	rec, err := read(f)
	if err != nil {
		return material.Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Load reads a file and builds a material from it. Options are applied
// after the file's own definitions.
func Load(path string, opts ...material.Option) (*material.Material, error) {
	rec, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	m, err := material.FromRecord(rec, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

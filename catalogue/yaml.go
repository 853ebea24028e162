package catalogue

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/model"
)

// numbers decodes either a scalar such as "0.3 2.5" or a sequence of
// numbers.
type numbers []float64

func (n *numbers) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		vals, err := parseNumbers(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*n = vals
		return nil

	case yaml.SequenceNode:
		vals := make([]float64, len(node.Content))
		for i, c := range node.Content {
			if err := c.Decode(&vals[i]); err != nil {
				return fmt.Errorf("%w: line %d: %w", ErrFormat, c.Line, err)
			}
		}
		*n = vals
		return nil
	}

	return fmt.Errorf("%w: line %d: expected numbers", ErrFormat, node.Line)
}

// rows decodes a block of whitespace separated lines or a sequence of
// number lists.
type rows [][]float64

func (r *rows) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var out [][]float64
		for i, line := range strings.Split(node.Value, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			vals, err := parseNumbers(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line+i, err)
			}
			out = append(out, vals)
		}
		*r = out
		return nil

	case yaml.SequenceNode:
		out := make([][]float64, len(node.Content))
		for i, c := range node.Content {
			var row numbers
			if err := c.Decode(&row); err != nil {
				return err
			}
			out[i] = row
		}
		*r = out
		return nil
	}

	return fmt.Errorf("%w: line %d: expected a table", ErrFormat, node.Line)
}

// ReadYAML reads a record in the refractiveindex.info YAML layout. Top
// level keys are matched case-insensitively; unknown keys are ignored.
func ReadYAML(r io.Reader) (material.Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return material.Record{}, fmt.Errorf("%w: empty document", ErrFormat)
		}
		return material.Record{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return material.Record{}, fmt.Errorf("%w: top level must be a mapping", ErrFormat)
	}

	var rec material.Record
	root := doc.Content[0]

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]

		switch strings.ToUpper(key) {
		case "DATA":
			ds, err := readDatasets(val)
			if err != nil {
				return material.Record{}, err
			}
			rec.Datasets = ds

		case "SPECS":
			var specs map[string]any
			if err := val.Decode(&specs); err != nil {
				return material.Record{}, fmt.Errorf("%w: SPECS: %w", ErrFormat, err)
			}
			rec.Metadata.Specs = specs

		default:
			if val.Kind == yaml.ScalarNode {
				setMetadata(&rec.Metadata, key, strings.TrimSpace(val.Value))
			}
		}
	}

	if len(rec.Datasets) == 0 {
		return material.Record{}, fmt.Errorf("%w: no DATA", ErrFormat)
	}

	return rec, nil
}

func readDatasets(node *yaml.Node) ([]material.DatasetRecord, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: DATA must be a list", ErrFormat, node.Line)
	}

	out := make([]material.DatasetRecord, 0, len(node.Content))
	for i, item := range node.Content {
		ds, err := readDataset(item)
		if err != nil {
			return nil, fmt.Errorf("dataset %d: %w", i, err)
		}
		out = append(out, ds)
	}
	return out, nil
}

func readDataset(node *yaml.Node) (material.DatasetRecord, error) {
	var ds material.DatasetRecord
	if node.Kind != yaml.MappingNode {
		return ds, fmt.Errorf("%w: line %d: dataset must be a mapping", ErrFormat, node.Line)
	}

	var kindText, unitText string
	typed := false

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := strings.ToLower(node.Content[i].Value), node.Content[i+1]

		var err error
		switch {
		case key == "type":
			ds.Type, ds.ModelName, err = material.ParseDatasetType(val.Value)
			typed = true
		case key == "data":
			var table rows
			err = val.Decode(&table)
			ds.Table = table
		case key == "coefficients", key == "parameters":
			var params numbers
			err = val.Decode(&params)
			ds.Parameters = params
		case isRangeKey(key):
			var vr numbers
			err = val.Decode(&vr)
			ds.ValidRange = vr
		case key == "spectrumtype", key == "spectrum_type":
			kindText = val.Value
		case key == "unit":
			unitText = val.Value
		case key == "yields":
			ds.Yields, err = model.ParseOutput(val.Value)
		}
		if err != nil {
			return ds, fmt.Errorf("%s: %w", key, err)
		}
	}

	if !typed {
		return ds, fmt.Errorf("%w: line %d: dataset has no type", ErrFormat, node.Line)
	}

	var err error
	ds.Kind, ds.Unit, err = spectrumOf(kindText, unitText)
	return ds, err
}

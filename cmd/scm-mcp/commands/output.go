package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"scm-mcp/internal/contract"

	"gopkg.in/yaml.v3"
)

var outputFormat string

// render writes v to w as indented JSON or, via its JSON form, as YAML so
// both encodings share the same field names.
func render(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	switch contract.Format(outputFormat) {
	case contract.FormatJSON:
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case contract.FormatYAML:
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", outputFormat)
	}
}

// readDocument loads a request file and infers its encoding from the extension.
func readDocument(path string) ([]byte, contract.Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return data, contract.FormatFromPath(path), nil
}

// loadBaseline reads a baseline file, or returns the reference baseline when
// path is empty.
func loadBaseline(path string) ([]contract.PeriodRecord, error) {
	if path == "" {
		return svc.ReferenceBaseline().Baseline, nil
	}
	data, format, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return contract.DecodeBaseline(data, format)
}

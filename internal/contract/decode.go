package contract

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a request document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension; anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeBaseline reads a bare list of periods.
func DecodeBaseline(data []byte, f Format) ([]PeriodRecord, error) {
	return decode[[]PeriodRecord](data, f, resolvedBaseline)
}

// DecodeScenario reads a single-projection request.
func DecodeScenario(data []byte, f Format) (ScenarioRequest, error) {
	return decode[ScenarioRequest](data, f, resolvedScenario)
}

// DecodeSweep reads a sweep request.
func DecodeSweep(data []byte, f Format) (SweepRequest, error) {
	return decode[SweepRequest](data, f, resolvedSweep)
}

// DecodeBuckets reads a cycle-time report request.
func DecodeBuckets(data []byte, f Format) (BucketRequest, error) {
	return decode[BucketRequest](data, f, resolvedBucket)
}

// decode normalizes YAML to JSON, validates the document against schema and
// unmarshals it into T.
func decode[T any](data []byte, f Format, schema *jsonschema.Resolved) (T, error) {
	var out T

	if f == FormatYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return out, fmt.Errorf("%w: parse yaml: %v", ErrInvalidRequest, err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return out, fmt.Errorf("%w: convert yaml: %v", ErrInvalidRequest, err)
		}
		data = converted
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return out, fmt.Errorf("%w: parse json: %v", ErrInvalidRequest, err)
	}
	if err := validate(schema, instance); err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return out, nil
}

package vttskema

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes a JSON document into the map value bag the field engine
// cleans and validates. Numbers are preserved as json.Number so integer leaf
// fields can coerce without float precision loss.
func DecodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return out, nil
}

// DecodeYAML decodes a YAML document into a map value bag. YAML scalars
// arrive as int/float64/string per yaml.v3 defaults; leaf cleaning coerces
// them the same way it does JSON input.
func DecodeYAML(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return out, nil
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// query evaluates the JSONPath expression on the JSON encoding of v.
func query(path string, v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	res, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return res, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

func validateOutputFormat(output string) error {
	switch strings.ToLower(output) {
	case "table":
	case "yaml":
	case "json":
	default:
		return errors.Errorf("unknown output format %q", output)
	}
	return nil
}

// printStructured renders the given object as yaml or json. Table rendering
// stays with each command since only it knows its columns.
func printStructured(output string, obj interface{}) error {
	switch strings.ToLower(output) {
	case "yaml":
		yamlBytes, err := yaml.Marshal(obj)
		if err != nil {
			return errors.Wrap(err, "error formatting output")
		}
		fmt.Println(string(yamlBytes))
	case "json":
		jsonBytes, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return errors.Wrap(err, "error formatting output")
		}
		fmt.Println(string(jsonBytes))
	}
	return nil
}

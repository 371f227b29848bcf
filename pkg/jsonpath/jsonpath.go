// Package jsonpath extracts values from JSON documents using JSONPath
// expressions.
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract extracts a value from a JSON string using a JSONPath expression
func Extract(json string, path string) (string, error) {
	if json == "" {
		return "", fmt.Errorf("empty JSON string")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}

	// Convert JSONPath to gjson path format
	// JSONPath: $.users[0].name
	// gjson:    users.0.name
	gpath := convertToGjsonPath(path)

	result := gjson.Get(json, gpath)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}

	return result.String(), nil
}

// convertToGjsonPath converts a JSONPath expression to gjson's path syntax
func convertToGjsonPath(path string) string {
	gpath := strings.TrimPrefix(path, "$")
	gpath = strings.TrimPrefix(gpath, ".")

	// Convert array indexing: users[0] -> users.0
	gpath = strings.ReplaceAll(gpath, "[", ".")
	gpath = strings.ReplaceAll(gpath, "]", "")

	return gpath
}

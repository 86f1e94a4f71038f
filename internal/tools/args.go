package tools

import (
	"fmt"

	"SolPulse/pkg/util"
)

// StringArg extracts a required non-empty string argument.
func StringArg(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("argument %q must be a non-empty string", key)
	}
	return s, nil
}

// IntArg extracts an optional integer argument, tolerating the float64
// and string encodings JSON decoding produces.
func IntArg(args map[string]interface{}, key string, def int) int {
	v, ok := args[key]
	if !ok {
		return def
	}
	return util.ParseInt(v, def)
}

package commands

import (
	"strconv"
	"strings"
)

// parseParams reads key=value arguments. A double-quoted value is a string
// in which underscores stand for spaces and \" for a quote; otherwise the
// value must be an integer or a float. Anything else is skipped.
func parseParams(args []string) map[string]any {
	params := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			continue
		}
		if v, ok := parseValue(raw); ok {
			params[key] = v
		}
	}
	return params
}

func parseValue(raw string) (any, bool) {
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		s := raw[1 : len(raw)-1]
		s = strings.ReplaceAll(s, `\"`, `"`)
		s = strings.ReplaceAll(s, "_", " ")
		return s, true
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return i, true
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f, true
	}
	return nil, false
}

package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Variable pattern: ${key} or ${nested.key}
var varPattern = regexp.MustCompile(`\$\{\s*([a-zA-Z0-9_.]+)\s*\}`)

// VariableSubstitutor replaces ${var} references in study documents.
// Substitution is textual, so a reference may stand in for a number
// (p_high: ${boiler}) as well as part of a string.
type VariableSubstitutor struct{}

// NewVariableSubstitutor creates a new variable substitutor.
func NewVariableSubstitutor() *VariableSubstitutor {
	return &VariableSubstitutor{}
}

// Substitute replaces every reference in data with its value from vars.
// Returns an error naming the first reference that cannot be resolved.
func (s *VariableSubstitutor) Substitute(data []byte, vars map[string]interface{}) ([]byte, error) {
	out, err := s.substituteInString(string(data), vars)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Mask replaces every reference with a null scalar so the document can be
// parsed before the variables are known.
func (s *VariableSubstitutor) Mask(data []byte) []byte {
	return varPattern.ReplaceAll(data, []byte("null"))
}

func (s *VariableSubstitutor) substituteInString(str string, vars map[string]interface{}) (string, error) {
	var firstErr error

	result := varPattern.ReplaceAllStringFunc(str, func(match string) string {
		submatches := varPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			if firstErr == nil {
				firstErr = fmt.Errorf("invalid variable pattern: %s", match)
			}
			return match
		}

		value, err := lookupVar(vars, submatches[1])
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// lookupVar looks up a scalar variable by dotted path (e.g. "boiler.pressure").
func lookupVar(vars map[string]interface{}, path string) (string, error) {
	parts := strings.Split(path, ".")
	current := interface{}(vars)

	for i, part := range parts {
		m, ok := asMap(current)
		if !ok {
			return "", fmt.Errorf("variable path %s: cannot access %s (not a map)", path, strings.Join(parts[:i+1], "."))
		}

		value, exists := m[part]
		if !exists {
			return "", fmt.Errorf("variable not found: %s", path)
		}
		current = value
	}

	switch v := current.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case int, int64, uint64, uint, int32, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		return "", fmt.Errorf("variable %s is not a scalar", path)
	}
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[fmt.Sprintf("%v", k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

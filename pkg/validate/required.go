package validate

import "strings"

// Field is a named input value.
type Field struct {
	Name  string
	Value string
}

// Missing returns the names of fields that are empty or whitespace only,
// in the order they were given.
func Missing(fields ...Field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// Present reports whether every value is non-blank.
func Present(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

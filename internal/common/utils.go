package common

import (
	"reflect"
	"strings"
)

// tagKeys are the struct tag keys understood on annotated record structs.
var tagKeys = []string{"attr", "required", "enumerable", "default"}

// GetTags retrieves the decorum tags of a single struct field. Fields without an
// `attr` tag get the field name with its first letter lowered.
func GetTags(field reflect.StructField) map[string]string {
	tags := make(map[string]string)
	for _, key := range tagKeys {
		if val, ok := field.Tag.Lookup(key); ok {
			tags[key] = val
		}
	}
	if tags["attr"] == "" {
		tags["attr"] = LowerFirst(field.Name)
	}
	return tags
}

// LowerFirst lowers the first byte of s, turning an exported Go field name into
// the attribute naming used by records.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// IsStructPtr checks if the provided value is a pointer to a struct.
func IsStructPtr(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// GetStructType returns the reflect.Type of a struct or of the struct behind a pointer.
// It returns nil for anything else.
func GetStructType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

// MarkerField returns the first anonymous field of t whose type is named marker.
func MarkerField(t reflect.Type, marker string) (reflect.StructField, bool) {
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous && field.Type.Name() == marker {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

// ClosestMatch returns the candidate with the smallest edit distance to target, or
// empty string if none are within a reasonable threshold.
func ClosestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}
	low := strings.ToLower(target)
	// Prefer prefix matches (case-insensitive)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), low) {
			return c
		}
	}

	best := ""
	bestDist := -1
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if abs(len(lc)-len(low)) > 3 {
			continue
		}
		if isTransposition(low, lc) {
			return c
		}
		d := levenshtein(low, lc)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist >= 0 && bestDist <= max(2, len(low)/3) {
		return best
	}
	return ""
}

// isTransposition checks for one-character transposition (Damerau case)
func isTransposition(a, b string) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var diff []int
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff = append(diff, i)
			if len(diff) > 2 {
				return false
			}
		}
	}
	if len(diff) != 2 {
		return false
	}
	return a[diff[0]] == b[diff[1]] && a[diff[1]] == b[diff[0]]
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// levenshtein computes the Levenshtein edit distance between a and b.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		copy(prev, curr)
	}
	return prev[lb]
}

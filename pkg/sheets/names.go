package sheets

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MakeNamesUnique turns values into names, suffixing repeats with "-1",
// "-2", ... in order of occurrence.
func MakeNamesUnique(values []any) []string {
	seen := make(map[string]int, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		name := nameOf(v)
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			out = append(out, fmt.Sprintf("%s-%d", name, n+1))
			continue
		}
		seen[name] = 0
		out = append(out, name)
	}
	return out
}

func uniqueNames(names []string) []string {
	values := make([]any, len(names))
	for i, n := range names {
		values[i] = n
	}
	return MakeNamesUnique(values)
}

// nameOf renders a header cell. Whole floats keep a ".0".
func nameOf(v any) string {
	switch f := v.(type) {
	case float64:
		return floatName(f)
	case float32:
		return floatName(float64(f))
	}
	if s, ok := ConvertValue(v, KindString).(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func floatName(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

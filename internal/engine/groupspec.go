package engine

import "strings"

// maxGroupCols caps how many grouping columns a spec may carry.
const maxGroupCols = 2

// ParseGroupSpec parses a grouping specification like "", "B" or "B+C"
// into an ordered list of at most two distinct column names.
//
// Segments are trimmed; empty segments, the selected column, unknown
// columns and duplicates are dropped. Invalid input never fails, it just
// degrades to a shorter (possibly empty) list.
func ParseGroupSpec(spec, selectedCol string, columns []string) []string {
	if spec == "" {
		return nil
	}

	valid := make(map[string]bool, len(columns))
	for _, c := range columns {
		valid[c] = true
	}

	var result []string
	for _, part := range strings.Split(spec, "+") {
		p := strings.TrimSpace(part)
		if p == "" || p == selectedCol || !valid[p] {
			continue
		}
		if contains(result, p) {
			continue
		}
		result = append(result, p)
		if len(result) >= maxGroupCols {
			break
		}
	}
	return result
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

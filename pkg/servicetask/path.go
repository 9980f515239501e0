package servicetask

import (
	"fmt"
	"strconv"
	"strings"
)

// extractPath walks a dotted path with optional `[i]` array indices over a
// decoded JSON-like value tree.
func extractPath(root any, path string) (any, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	cur := root
	for _, seg := range segments {
		if seg.index != nil {
			slice, ok := cur.([]any)
			if !ok {
				return nil, fmt.Errorf("cannot index non-array value at %q", seg.name)
			}
			idx := *seg.index
			if idx < 0 || idx >= len(slice) {
				return nil, fmt.Errorf("index %d out of range (len %d)", idx, len(slice))
			}
			cur = slice[idx]
			continue
		}
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cannot access field %q of non-object value", seg.name)
		}
		v, ok := m[seg.name]
		if !ok {
			return nil, fmt.Errorf("field %q not found", seg.name)
		}
		cur = v
	}
	return cur, nil
}

type pathSegment struct {
	name  string
	index *int
}

// splitPath parses "a.b[2].c" into [{a} {b} {b,2} {c}]: an indexed part
// yields a field step followed by an index step.
func splitPath(path string) ([]pathSegment, error) {
	var segments []pathSegment
	for _, part := range strings.Split(path, ".") {
		name := part
		idx := (*int)(nil)
		if br := strings.IndexByte(part, '['); br >= 0 {
			if !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("malformed index in path segment %q", part)
			}
			name = part[:br]
			n, err := strconv.Atoi(part[br+1 : len(part)-1])
			if err != nil {
				return nil, fmt.Errorf("malformed index in path segment %q: %w", part, err)
			}
			idx = &n
		}
		if name != "" {
			segments = append(segments, pathSegment{name: name})
		}
		if idx != nil {
			segments = append(segments, pathSegment{name: name, index: idx})
		}
	}
	return segments, nil
}

package schema

import (
	"strings"
)

// Substring matches below this many normalized characters are noise
// ("N" would match almost every header).
const minSubstringLen = 3

// Binding maps canonical fields to resolved column indexes for one header
// row. Built once per fetch, immutable afterward.
type Binding struct {
	columns   map[Field]int
	matched   []Field
	unmatched []Field
}

// Col returns the resolved column index for f, or false when unbound.
func (b Binding) Col(f Field) (int, bool) {
	i, ok := b.columns[f]
	return i, ok
}

// Bound reports whether f resolved to a column.
func (b Binding) Bound(f Field) bool {
	_, ok := b.columns[f]
	return ok
}

// Value extracts the raw cell for f from row, trimmed. Returns "" when the
// field is unbound or the row is short.
func (b Binding) Value(row []string, f Field) string {
	i, ok := b.columns[f]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Matched returns the canonical fields that resolved, in table order.
// Diagnostic only; never affects parsing.
func (b Binding) Matched() []Field { return b.matched }

// Unmatched returns the canonical fields that did not resolve, in table
// order. Diagnostic only.
func (b Binding) Unmatched() []Field { return b.unmatched }

// Resolve binds header to table's canonical fields using three passes per
// field: exact (case-insensitive), normalized (letters and digits only),
// then substring (either side contains the other, both at least three
// normalized characters). Each pass runs across all aliases before the next
// pass starts, favoring precision over recall. The same header set always
// yields the same binding.
func Resolve(header []string, table AliasTable) Binding {
	b := Binding{columns: make(map[Field]int, len(table.Entries))}

	trimmed := make([]string, len(header))
	normalized := make([]string, len(header))
	for i, h := range header {
		trimmed[i] = strings.TrimSpace(h)
		normalized[i] = normalizeHeader(h)
	}

	for _, entry := range table.Entries {
		if col, ok := resolveField(trimmed, normalized, entry.Aliases); ok {
			b.columns[entry.Field] = col
			b.matched = append(b.matched, entry.Field)
		} else {
			b.unmatched = append(b.unmatched, entry.Field)
		}
	}
	return b
}

func resolveField(trimmed, normalized []string, aliases []string) (int, bool) {
	// Pass 1: exact, case-insensitive.
	for _, a := range aliases {
		for i, h := range trimmed {
			if strings.EqualFold(h, a) {
				return i, true
			}
		}
	}

	// Pass 2: normalized equality, so "2023 Alpha", "2023-Alpha" and
	// "Alpha (2023)" collapse to the same key.
	for _, a := range aliases {
		na := normalizeHeader(a)
		if na == "" {
			continue
		}
		for i, nh := range normalized {
			if nh == na {
				return i, true
			}
		}
	}

	// Pass 3: substring in either direction, guarding against drift like
	// "Creator Name" -> "Primary Creator Name".
	for _, a := range aliases {
		na := normalizeHeader(a)
		if len(na) < minSubstringLen {
			continue
		}
		for i, nh := range normalized {
			if len(nh) < minSubstringLen {
				continue
			}
			if strings.Contains(nh, na) || strings.Contains(na, nh) {
				return i, true
			}
		}
	}

	return 0, false
}

// normalizeHeader lowercases and strips everything but letters and digits.
func normalizeHeader(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		}
	}
	return sb.String()
}

// Package csvio turns raw delimited text into rows of fields.
//
// The sheet export this service consumes is edited by hand, so the tokenizer
// has to survive quoted fields containing commas and line breaks, doubled
// quotes as escapes, and mixed CRLF/LF endings. A stricter reader that
// rejects ragged input would fail the whole snapshot over one sloppy cell;
// garbage rows are caught later by the validation gate instead.
package csvio

// Delimiter separates fields within a row.
const Delimiter = ','

// Tokenize splits text into rows of fields using a single-pass two-state
// scan (inside/outside a quoted field). An unterminated quote consumes to
// the end of input rather than failing.
func Tokenize(text string) [][]string {
	if text == "" {
		return nil
	}

	var (
		rows     [][]string
		row      []string
		field    []byte
		inQuotes bool
	)

	flushField := func() {
		row = append(row, string(field))
		field = field[:0]
	}
	flushRow := func() {
		flushField()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuotes {
			if c == '"' {
				// Doubled quote inside a quoted field is a literal quote.
				if i+1 < len(text) && text[i+1] == '"' {
					field = append(field, '"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field = append(field, c)
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case Delimiter:
			flushField()
		case '\r':
			// CRLF: consume the LF as part of the terminator.
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			flushRow()
		case '\n':
			flushRow()
		default:
			field = append(field, c)
		}
	}

	// Trailing row without a final line terminator.
	if len(field) > 0 || len(row) > 0 {
		flushRow()
	}

	return rows
}

package domain

// Record is a schema-less row: column name to value. Variant root shapes are
// only known at runtime, so the engine carries rows this way and converts to
// typed values at the public boundary only.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Int64 reads an integer column, tolerating the widths drivers hand back.
func (r Record) Int64(column string) (int64, bool) {
	switch v := r[column].(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// String reads a text column, returning "" when absent or non-text.
func (r Record) String(column string) string {
	if v, ok := r[column].(string); ok {
		return v
	}
	return ""
}

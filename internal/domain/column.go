package domain

import "strings"

// ColumnDescriptor is one column of a table as reported by the store's
// catalog. The set is treated as immutable for the duration of one relocation
// run; no concurrent DDL is assumed.
type ColumnDescriptor struct {
	Name       string
	DataType   string
	Nullable   bool
	HasDefault bool
}

// TypeClass buckets a declared column type for safe-default synthesis.
type TypeClass int

const (
	TypeTextual TypeClass = iota
	TypeNumeric
	TypeTemporal
)

func (c TypeClass) String() string {
	switch c {
	case TypeNumeric:
		return "numeric"
	case TypeTemporal:
		return "temporal"
	default:
		return "textual"
	}
}

var (
	temporalHints = []string{"timestamp", "date", "time"}
	numericHints  = []string{"int", "serial", "numeric", "decimal", "real", "double", "money", "float"}
)

// ClassifyType maps a declared column type to a default class by lowercase
// substring match. Temporal hints are checked first; unrecognized types fall
// back to Textual so an exotic column never blocks a relocation.
func ClassifyType(dataType string) TypeClass {
	t := strings.ToLower(dataType)
	for _, hint := range temporalHints {
		if strings.Contains(t, hint) {
			return TypeTemporal
		}
	}
	for _, hint := range numericHints {
		if strings.Contains(t, hint) {
			return TypeNumeric
		}
	}
	return TypeTextual
}

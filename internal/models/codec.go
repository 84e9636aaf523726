package models

import "strings"

// FieldSeparator joins record fields on their persisted line.
//
// Field values are not escaped: a separator inside a free-text field shifts
// every following column on the next load. The format is kept as-is for
// compatibility with existing data files; the service layer keeps separators
// out of free-text fields instead.
const FieldSeparator = ","

func joinLine(fields ...string) string {
	return strings.Join(fields, FieldSeparator)
}

// splitLine splits a persisted line and reports whether it carries at least
// the minimum field count for the record being decoded.
func splitLine(line string, minFields int) ([]string, bool) {
	fields := strings.Split(line, FieldSeparator)
	if len(fields) < minFields {
		return nil, false
	}
	return fields, true
}

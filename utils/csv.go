package utils

import "strings"

// WriteCSV renders rows as CSV matching the export contract of the admin
// screens: a plain comma-joined header row of column names, then one row
// per record with every field quoted and embedded quotes doubled.
// encoding/csv only quotes when it has to, which is why this is written by
// hand.
func WriteCSV(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString(strings.Join(headers, ","))
	b.WriteByte('\n')

	for _, row := range rows {
		for i, f := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

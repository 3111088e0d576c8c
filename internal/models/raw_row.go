package models

// RawRow holds the two fields of one CSV record the engine cares about.
// Fields absent from the record are empty strings.
type RawRow struct {
	Number   int // 1-based line of the record in its file; the header is line 1
	Duration string
	Date     string
}

// SourceTable is one fully read input file.
type SourceTable struct {
	Name          string
	HasDateColumn bool
	Rows          []RawRow
}

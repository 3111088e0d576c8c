package models

// ExtractionStats counts the outcome of every data row of one file.
type ExtractionStats struct {
	Processed int // rows with a valid Duration
	Skipped   int // rows with a blank or missing Duration
	Malformed int // rows whose Duration could not be parsed
}

// Extraction is the normalized Duration column of one file, in row order.
type Extraction struct {
	Source string
	Values []float64
	Stats  ExtractionStats
}

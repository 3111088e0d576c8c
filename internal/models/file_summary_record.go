package models

// FileSummaryRecord is one row of the summary table.
//
// Example CSV line (with header):
//
//	Date,n,P95,Time of Day,Intensity
//	2025-10-27,3,2720.00,Morning,1.50
type FileSummaryRecord struct {
	Source    string // input file name, not part of the CSV row
	Date      string // YYYY-MM-DD of the earliest valid timestamp
	N         int    // number of valid Duration values
	P95       float64
	TimeOfDay TimeOfDay
	Intensity float64 // valid timestamps per second
}

func NewFileSummaryRecord(source, date string, n int, p95 float64, timeOfDay TimeOfDay, intensity float64) FileSummaryRecord {
	return FileSummaryRecord{
		Source:    source,
		Date:      date,
		N:         n,
		P95:       p95,
		TimeOfDay: timeOfDay,
		Intensity: intensity,
	}
}

// SummaryTable holds one record per summarized file in processing order.
type SummaryTable []FileSummaryRecord

// SummaryHeader is the header row of the summary CSV.
var SummaryHeader = []string{"Date", "n", "P95", "Time of Day", "Intensity"}

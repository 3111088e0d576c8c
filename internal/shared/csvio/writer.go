package csvio

import (
	"bytes"
	"encoding/csv"
)

// EncodeRecords renders records as UTF-8 CSV with "\n" line endings.
func EncodeRecords(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

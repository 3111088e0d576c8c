package stores

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"duration-stats/internal/models"
	"duration-stats/internal/shared/csvio"
	"duration-stats/internal/shared/filestorages"
)

// SummaryTableStore writes the batch summary CSV:
//
//	Date,n,P95,Time of Day,Intensity
//	2025-10-27,3,2720.00,Morning,1.50
//
// P95 and Intensity use a fixed number of decimals.
//
//go:generate mockgen -source=summary_table_store.go -destination=./mocks/summary_table_store_mock.go -package=mocks
type SummaryTableStore interface {
	Put(ctx context.Context, key string, table models.SummaryTable) error
	Path(key string) string
}

type summaryTableStore struct {
	fileStorage        filestorages.FileStorage
	p95Precision       int
	intensityPrecision int
}

func NewSummaryTableStore(fileStorage filestorages.FileStorage, p95Precision, intensityPrecision int) SummaryTableStore {
	return &summaryTableStore{
		fileStorage:        fileStorage,
		p95Precision:       p95Precision,
		intensityPrecision: intensityPrecision,
	}
}

func (s *summaryTableStore) Put(ctx context.Context, key string, table models.SummaryTable) error {
	records := make([][]string, 0, len(table)+1)
	records = append(records, models.SummaryHeader)
	for _, record := range table {
		records = append(records, []string{
			record.Date,
			strconv.Itoa(record.N),
			strconv.FormatFloat(record.P95, 'f', s.p95Precision, 64),
			string(record.TimeOfDay),
			strconv.FormatFloat(record.Intensity, 'f', s.intensityPrecision, 64),
		})
	}

	data, err := csvio.EncodeRecords(records)
	if err != nil {
		return fmt.Errorf("failed to encode summary table: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put summary table: %w", err)
	}

	return nil
}

func (s *summaryTableStore) Path(key string) string {
	return s.fileStorage.Path(key)
}

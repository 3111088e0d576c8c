package stores

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"duration-stats/internal/shared/csvio"
	"duration-stats/internal/shared/filestorages"
)

// DurationOutputStore writes the normalized Duration column of one input
// file: one millisecond value per line, no header. Existing files are
// replaced atomically, so re-runs over unchanged input yield identical bytes,
// unless the store was created without overwrite; then Put fails with
// filestorages.ErrFileAlreadyExists and leaves the existing file untouched.
//
//go:generate mockgen -source=duration_output_store.go -destination=./mocks/duration_output_store_mock.go -package=mocks
type DurationOutputStore interface {
	Put(ctx context.Context, key string, values []float64) error
	Path(key string) string
}

type durationOutputStore struct {
	fileStorage filestorages.FileStorage
	overwrite   bool
}

func NewDurationOutputStore(fileStorage filestorages.FileStorage, overwrite bool) DurationOutputStore {
	return &durationOutputStore{fileStorage: fileStorage, overwrite: overwrite}
}

func (s *durationOutputStore) Put(ctx context.Context, key string, values []float64) error {
	records := make([][]string, 0, len(values))
	for _, value := range values {
		records = append(records, []string{FormatMilliseconds(value)})
	}

	data, err := csvio.EncodeRecords(records)
	if err != nil {
		return fmt.Errorf("failed to encode durations: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: s.overwrite})
	if err != nil {
		return fmt.Errorf("failed to put durations: %w", err)
	}

	return nil
}

func (s *durationOutputStore) Path(key string) string {
	return s.fileStorage.Path(key)
}

// FormatMilliseconds renders v as the shortest plain decimal that parses
// back to v ("2040", "9.58", "0.001"), never in exponent form.
func FormatMilliseconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

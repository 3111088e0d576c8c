package stores

import (
	"context"
	"fmt"

	"duration-stats/internal/models"
	"duration-stats/internal/shared/csvio"
	"duration-stats/internal/shared/filestorages"
)

// SourceFileStore reads input CSV files from one directory. Each Load opens,
// fully reads and closes its file before returning.
//
//go:generate mockgen -source=source_file_store.go -destination=./mocks/source_file_store_mock.go -package=mocks
type SourceFileStore interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, key string) (*models.SourceTable, error)
	Path(key string) string
}

type sourceFileStore struct {
	fileStorage filestorages.FileStorage
	charset     string
}

func NewSourceFileStore(fileStorage filestorages.FileStorage, charset string) SourceFileStore {
	return &sourceFileStore{fileStorage: fileStorage, charset: charset}
}

func (s *sourceFileStore) List(ctx context.Context) ([]string, error) {
	keys, err := s.fileStorage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list source files: %w", err)
	}
	return keys, nil
}

func (s *sourceFileStore) Load(ctx context.Context, key string) (*models.SourceTable, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer readCloser.Close()

	table, err := csvio.ReadTable(readCloser, s.charset, csvio.ColumnDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}

	source := &models.SourceTable{
		Name:          key,
		HasDateColumn: table.Has(csvio.ColumnDate),
		Rows:          make([]models.RawRow, 0, len(table.Records)),
	}
	for i := range table.Records {
		source.Rows = append(source.Rows, models.RawRow{
			Number:   i + 2,
			Duration: table.Field(i, csvio.ColumnDuration),
			Date:     table.Field(i, csvio.ColumnDate),
		})
	}

	return source, nil
}

func (s *sourceFileStore) Path(key string) string {
	return s.fileStorage.Path(key)
}

package stores

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"duration-stats/internal/models"
	"duration-stats/internal/shared/csvio"
	"duration-stats/internal/shared/filestorages"
	"duration-stats/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// capturePut records the body written through a mocked FileStorage.Put.
func capturePut(body *string) func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
	return func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		*body = string(data)
		return &filestorages.PutResult{FileKey: key}, nil
	}
}

func TestSourceFileStore_Load(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSourceFileStore(mockFileStorage, "utf-8")

	ctx := context.Background()
	content := "Date,Duration\n2025-10-27T09:00:00Z,100ms\n2025-10-27T09:00:01Z,\n,3s\n"
	mockFileStorage.EXPECT().
		Get(ctx, "alpha.csv").
		Return(io.NopCloser(strings.NewReader(content)), nil)

	table, err := store.Load(ctx, "alpha.csv")
	require.NoError(t, err)

	assert.Equal(t, "alpha.csv", table.Name)
	assert.True(t, table.HasDateColumn)
	assert.Equal(t, []models.RawRow{
		{Number: 2, Duration: "100ms", Date: "2025-10-27T09:00:00Z"},
		{Number: 3, Duration: "", Date: "2025-10-27T09:00:01Z"},
		{Number: 4, Duration: "3s", Date: ""},
	}, table.Rows)
}

func TestSourceFileStore_Load_WithoutDateColumn(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSourceFileStore(mockFileStorage, "utf-8")

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Get(ctx, "input.csv").
		Return(io.NopCloser(strings.NewReader("Duration\n1s\n")), nil)

	table, err := store.Load(ctx, "input.csv")
	require.NoError(t, err)
	assert.False(t, table.HasDateColumn)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "", table.Rows[0].Date)
}

func TestSourceFileStore_Load_MissingDurationColumn(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSourceFileStore(mockFileStorage, "utf-8")

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Get(ctx, "summary.csv").
		Return(io.NopCloser(strings.NewReader("Date,n,P95,Time of Day,Intensity\n")), nil)

	_, err := store.Load(ctx, "summary.csv")
	assert.ErrorIs(t, err, csvio.ErrMissingColumn)
	assert.Contains(t, err.Error(), "failed to read source file")
}

func TestSourceFileStore_Load_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSourceFileStore(mockFileStorage, "utf-8")

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Get(ctx, "gone.csv").
		Return(nil, filestorages.ErrFileNotFound)

	_, err := store.Load(ctx, "gone.csv")
	assert.ErrorIs(t, err, filestorages.ErrFileNotFound)
}

func TestSourceFileStore_List_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSourceFileStore(mockFileStorage, "utf-8")

	ctx := context.Background()
	listErr := errors.New("permission denied")
	mockFileStorage.EXPECT().List(ctx).Return(nil, listErr)

	_, err := store.List(ctx)
	assert.ErrorIs(t, err, listErr)
	assert.Contains(t, err.Error(), "failed to list source files")
}

func TestDurationOutputStore_Put(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDurationOutputStore(mockFileStorage, true)

	ctx := context.Background()
	var body string
	mockFileStorage.EXPECT().
		Put(ctx, "durations_input.csv", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(capturePut(&body))

	values := []float64{8.94, 2040, 1304.44, 140.51, 2430, 32.72, 1171.29}
	require.NoError(t, store.Put(ctx, "durations_input.csv", values))
	assert.Equal(t, "8.94\n2040\n1304.44\n140.51\n2430\n32.72\n1171.29\n", body)
}

func TestDurationOutputStore_Put_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDurationOutputStore(mockFileStorage, true)

	ctx := context.Background()
	body := "unset"
	mockFileStorage.EXPECT().
		Put(ctx, "durations_empty.csv", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(capturePut(&body))

	require.NoError(t, store.Put(ctx, "durations_empty.csv", nil))
	assert.Equal(t, "", body)
}

func TestDurationOutputStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDurationOutputStore(mockFileStorage, true)

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Put(ctx, "durations_input.csv", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk full"))

	err := store.Put(ctx, "durations_input.csv", []float64{1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put durations")
	assert.Contains(t, err.Error(), "disk full")
}

func TestDurationOutputStore_Put_NoOverwrite(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDurationOutputStore(mockFileStorage, false)

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Put(ctx, "durations_input.csv", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Put(ctx, "durations_input.csv", []float64{1})
	assert.ErrorIs(t, err, filestorages.ErrFileAlreadyExists)
}

func TestFormatMilliseconds(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		2040:     "2040",
		9.58:     "9.58",
		0.001:    "0.001",
		1.72139:  "1.72139",
		0:        "0",
		1e21:     "1000000000000000000000",
		0.000001: "0.000001",
	}
	for value, expected := range tests {
		assert.Equal(t, expected, FormatMilliseconds(value))
	}
}

func TestSummaryTableStore_Put(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSummaryTableStore(mockFileStorage, 2, 2)

	ctx := context.Background()
	var body string
	mockFileStorage.EXPECT().
		Put(ctx, "summary.csv", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(capturePut(&body))

	table := models.SummaryTable{
		models.NewFileSummaryRecord("alpha.csv", "2025-10-27", 3, 2720, models.Morning, 1.5),
		models.NewFileSummaryRecord("gamma.csv", "2025-01-03", 3, 1200, models.Evening, 0.0125),
		models.NewFileSummaryRecord("huge.csv", "2025-01-04", 1, 1e21, models.Afternoon, 2e-7),
	}
	require.NoError(t, store.Put(ctx, "summary.csv", table))

	expected := "Date,n,P95,Time of Day,Intensity\n" +
		"2025-10-27,3,2720.00,Morning,1.50\n" +
		"2025-01-03,3,1200.00,Evening,0.01\n" +
		"2025-01-04,1,1000000000000000000000.00,Afternoon,0.00\n"
	assert.Equal(t, expected, body)
}

func TestSummaryTableStore_Put_HeaderOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSummaryTableStore(mockFileStorage, 3, 4)

	ctx := context.Background()
	var body string
	mockFileStorage.EXPECT().
		Put(ctx, "summary.csv", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(capturePut(&body))

	require.NoError(t, store.Put(ctx, "summary.csv", nil))
	assert.Equal(t, "Date,n,P95,Time of Day,Intensity\n", body)
}

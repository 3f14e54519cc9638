package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/weekledger/internal/dateutils"
	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/models"
)

func fixtureRecords() []models.Expense {
	return []models.Expense{
		{
			ID:          "x2",
			Description: "Bus",
			Amount:      decimal.RequireFromString("2.75"),
			Category:    models.CategoryTransport,
			Date:        dateutils.NewDate(2024, time.March, 13),
		},
		{
			ID:          "x1",
			Description: "Coffee",
			Amount:      decimal.RequireFromString("4.50"),
			Category:    models.CategoryFood,
			Date:        dateutils.NewDate(2024, time.March, 12),
		},
	}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	fileStore := NewFileStore(path, logging.NewMockLogger())

	require.NoError(t, fileStore.Save(fixtureRecords()))

	loaded, err := fileStore.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Order on disk is the ledger order.
	assert.Equal(t, "Bus", loaded[0].Description)
	assert.Equal(t, "Coffee", loaded[1].Description)
	assert.True(t, loaded[1].Amount.Equal(decimal.RequireFromString("4.50")))
	assert.Equal(t, "2024-03-12", loaded[1].Date.String())
}

func TestFileStore_LoadMissingFileIsEmptyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	fileStore := NewFileStore(path, logging.NewMockLogger())

	loaded, err := fileStore.Load()

	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileStore_LoadMalformedFileReturnsError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON at all", "definitely not json"},
		{"JSON object instead of array", `{"id":"x1"}`},
		{"truncated array", `[{"id":"x1"`},
		{"bad date inside record", `[{"id":"x1","description":"Coffee","amount":"4.50","category":"Food","date":"12.03.2024"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ledger.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			fileStore := NewFileStore(path, logging.NewMockLogger())
			_, err := fileStore.Load()

			assert.Error(t, err)
		})
	}
}

func TestFileStore_SaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	fileStore := NewFileStore(path, logging.NewMockLogger())

	require.NoError(t, fileStore.Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))

	loaded, err := fileStore.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileStore_SaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".weekledger", "data", "ledger.json")
	fileStore := NewFileStore(path, logging.NewMockLogger())

	require.NoError(t, fileStore.Save(fixtureRecords()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_SaveReplacesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	fileStore := NewFileStore(path, logging.NewMockLogger())

	require.NoError(t, fileStore.Save(fixtureRecords()))
	require.NoError(t, fileStore.Save(fixtureRecords()[:1]))

	loaded, err := fileStore.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Bus", loaded[0].Description)
}

func TestFileStore_LoadWarnsWhenFileIsWorldReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0600))
	require.NoError(t, os.Chmod(path, 0644))

	mockLog := logging.NewMockLogger()
	fileStore := NewFileStore(path, mockLog)

	_, err := fileStore.Load()

	require.NoError(t, err)
	assert.True(t, mockLog.HasEntry("WARN", "readable by other users"))
}

func TestFileStore_LoadLegacyNumericAmounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	legacy := `[{"id":"x1","description":"Coffee","amount":4.5,"category":"Food","date":"2024-03-12"}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0600))

	fileStore := NewFileStore(path, logging.NewMockLogger())
	loaded, err := fileStore.Load()

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].Amount.Equal(decimal.RequireFromString("4.5")))
}

package suggest

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/weekledger/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestYAMLStore(t *testing.T) *YAMLMappingStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	return NewYAMLMappingStore(path, logging.NewLogrusAdapter("info", "text"))
}

func TestYAMLMappingStore_MissingFile(t *testing.T) {
	store := newTestYAMLStore(t)

	mappings, err := store.LoadMappings()
	assert.NoError(t, err, "a missing mappings file is not an error")
	assert.Empty(t, mappings)

	keywords, err := store.LoadKeywords()
	assert.NoError(t, err)
	assert.Empty(t, keywords)
}

func TestYAMLMappingStore_SaveAndLoad(t *testing.T) {
	store := newTestYAMLStore(t)

	in := map[string]string{
		"coffee beans":   "Food",
		"monthly ticket": "Transport",
	}
	require.NoError(t, store.SaveMappings(in))

	out, err := store.LoadMappings()
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// The saved file carries an explanatory header
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Description to category mappings")
}

func TestYAMLMappingStore_SavePreservesKeywords(t *testing.T) {
	store := newTestYAMLStore(t)

	content := []byte(`mappings:
  "coffee beans": Food
keywords:
  Health:
    - chiropractor
`)
	require.NoError(t, os.WriteFile(store.Path(), content, 0600))

	require.NoError(t, store.SaveMappings(map[string]string{"coffee beans": "Food", "vet": "Other"}))

	keywords, err := store.LoadKeywords()
	require.NoError(t, err)
	assert.Equal(t, []string{"chiropractor"}, keywords["Health"])

	mappings, err := store.LoadMappings()
	require.NoError(t, err)
	assert.Equal(t, "Other", mappings["vet"])
}

func TestYAMLMappingStore_LegacyDirectMapFormat(t *testing.T) {
	store := newTestYAMLStore(t)

	content := []byte("\"coffee beans\": Food\n\"gym pass\": Health\n")
	require.NoError(t, os.WriteFile(store.Path(), content, 0600))

	mappings, err := store.LoadMappings()
	require.NoError(t, err)
	assert.Equal(t, "Food", mappings["coffee beans"])
	assert.Equal(t, "Health", mappings["gym pass"])
}

func TestYAMLMappingStore_CorruptFile(t *testing.T) {
	store := newTestYAMLStore(t)

	require.NoError(t, os.WriteFile(store.Path(), []byte(":\n\t- not yaml"), 0600))

	_, err := store.LoadMappings()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse mappings file")
}

func TestYAMLMappingStore_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "mappings.yaml")
	store := NewYAMLMappingStore(path, nil)

	require.NoError(t, store.SaveMappings(map[string]string{"coffee": "Food"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

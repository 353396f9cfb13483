package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"carp"}`), 0o600))

	var out struct {
		Name string `json:"name"`
	}
	hash, err := LoadJSON(path, &out)

	require.NoError(t, err)
	assert.Equal(t, "carp", out.Name)
	assert.Len(t, hash, 64)

	again, err := LoadJSON(path, &out)
	require.NoError(t, err)
	assert.Equal(t, hash, again, "hash is stable for unchanged content")
}

func TestLoadJSON_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadJSON(filepath.Join(dir, "missing.json"), &struct{}{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))
	_, err = LoadJSON(bad, &struct{}{})
	assert.ErrorContains(t, err, "failed to unmarshal")
}

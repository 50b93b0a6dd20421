package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestLoadJSON(t *testing.T) {
	t.Run("loads valid JSON file successfully", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "test.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte(`{"name": "test", "value": 42}`), 0600))

		var result sample
		require.NoError(t, LoadJSON(jsonFile, &result))
		assert.Equal(t, sample{Name: "test", Value: 42}, result)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		var result map[string]interface{}
		err := LoadJSON("/nonexistent/path/file.json", &result)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "invalid.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte("{invalid json}"), 0600))

		var result map[string]interface{}
		err := LoadJSON(jsonFile, &result)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]string{"name": "§cRed <b>"}))

	assert.Equal(t, "{\n  \"name\": \"§cRed <b>\"\n}\n", buf.String())
}

func TestWriteJSON_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, make(chan int))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal data")
}

func TestSaveJSON(t *testing.T) {
	t.Run("round trips through LoadJSON", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "output.json")
		require.NoError(t, SaveJSON(jsonFile, sample{Name: "saved", Value: 7}))

		var loaded sample
		require.NoError(t, LoadJSON(jsonFile, &loaded))
		assert.Equal(t, sample{Name: "saved", Value: 7}, loaded)
	})

	t.Run("returns error for unwritable path", func(t *testing.T) {
		err := SaveJSON(filepath.Join(t.TempDir(), "missing", "out.json"), sample{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write file")
	})
	t.Run("failed encode keeps the existing file", func(t *testing.T) {
		dir := t.TempDir()
		jsonFile := filepath.Join(dir, "output.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte(`{"name":"old"}`), 0o644))

		err := SaveJSON(jsonFile, make(chan int))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal data")

		content, err := os.ReadFile(jsonFile)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"old"}`, string(content))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temporary file is left behind")
	})
}

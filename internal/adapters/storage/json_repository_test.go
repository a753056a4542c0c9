package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
)

func TestJSONCompletionRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "finished-assignments.json")
	repo := NewJSONCompletionRepository(path)

	record := domain.NewCompletionRecord([]domain.Student{
		{Name: "Ann-Lee", Username: "annlee"},
		{Name: "Bo-Kim", Username: "bokim"},
	})
	record.TrackAssignment("hw1")
	_, err := record.MarkComplete("Ann-Lee", "hw1")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, record))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, record, loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"completed": []`, "empty lists are written as []")
}

func TestJSONCompletionRepository_LoadMissing(t *testing.T) {
	repo := NewJSONCompletionRepository(filepath.Join(t.TempDir(), "absent.json"))

	_, err := repo.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestJSONCompletionRepository_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{"assignments": [`},
		{"wrong type", `{"assignments": "hw1"}`},
		{"dangling completion", `{"assignments": [], "students": [{"name": "A", "username": "a", "completed": ["hw1"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "record.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := NewJSONCompletionRepository(path).Load(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedRecord)
		})
	}
}

func TestJSONCompletionRepository_LoadNormalizesNulls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	content := `{"assignments": null, "students": [{"name": "A", "username": "a", "completed": null}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	record, err := NewJSONCompletionRepository(path).Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, record.Assignments)
	assert.NotNil(t, record.Students[0].Completed)
}

func TestJSONCompletionRepository_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewJSONCompletionRepository(filepath.Join(dir, "record.json"))
	record := domain.NewCompletionRecord(nil)

	require.NoError(t, repo.Save(context.Background(), record))
	record.TrackAssignment("hw1")
	require.NoError(t, repo.Save(context.Background(), record))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "record.json", entries[0].Name())
}

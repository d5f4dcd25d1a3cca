package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/answerbox/answerbox/internal/model"
)

func writeKB(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileStore_PreservesDeclarationOrder(t *testing.T) {
	path := writeKB(t, `{
		"python": "a programming language",
		"java": "another programming language",
		"go": "yet another programming language"
	}`)

	entries, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Entry{
		{Keyword: "python", Answer: "a programming language"},
		{Keyword: "java", Answer: "another programming language"},
		{Keyword: "go", Answer: "yet another programming language"},
	}, entries)
}

func TestFileStore_DuplicateKeyKeepsPositionTakesLastValue(t *testing.T) {
	path := writeKB(t, `{"a": "first", "b": "middle", "a": "second"}`)

	entries, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Entry{
		{Keyword: "a", Answer: "second"},
		{Keyword: "b", Answer: "middle"},
	}, entries)
}

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFileStore_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":         `keyword: answer`,
		"array":            `["python", "java"]`,
		"non-string value": `{"python": 42}`,
		"truncated":        `{"python": "a language"`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeKB(t, content)
			_, err := NewFileStore(path).Load(context.Background())
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestFileStore_EmptyObject(t *testing.T) {
	path := writeKB(t, `{}`)

	entries, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_RereadsOnEveryLoad(t *testing.T) {
	path := writeKB(t, `{"python": "old answer"}`)
	store := NewFileStore(path)

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "old answer", entries[0].Answer)

	require.NoError(t, os.WriteFile(path, []byte(`{"python": "new answer"}`), 0o644))

	entries, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new answer", entries[0].Answer)
}

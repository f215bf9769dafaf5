package wordlist_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xkcdpass/pkg/wordlist"
)

func TestNew(t *testing.T) {
	t.Parallel()

	l := wordlist.New("  horse", "", "battery \t", "   ", "staple")
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"horse", "battery", "staple"}, l.Words(0, 100))
}

func TestList_Words(t *testing.T) {
	t.Parallel()

	l := wordlist.New("a", "tree", "frog", "horse", "battery", "crème")

	tests := []struct {
		name     string
		min, max int
		want     []string
	}{
		{"exact length", 4, 4, []string{"tree", "frog"}},
		{"inclusive range", 4, 5, []string{"tree", "frog", "horse", "crème"}},
		{"counts characters not bytes", 5, 5, []string{"horse", "crème"}},
		{"nothing qualifies", 8, 12, nil},
		{"inverted bounds", 5, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, l.Words(tt.min, tt.max))
		})
	}
}

func TestList_WordsReturnsFreshSlice(t *testing.T) {
	t.Parallel()

	l := wordlist.New("tree", "frog")
	first := l.Words(4, 4)
	first[0] = "XXXX"
	assert.Equal(t, []string{"tree", "frog"}, l.Words(4, 4))
}

func TestParse(t *testing.T) {
	t.Parallel()

	l, err := wordlist.Parse(strings.NewReader("horse\n\nbattery\r\n  staple  \n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"horse", "battery", "staple"}, l.Words(1, 10))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParse_ReadError(t *testing.T) {
	t.Parallel()

	_, err := wordlist.Parse(failingReader{})
	assert.ErrorIs(t, err, wordlist.ErrReadWordList)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("reads words", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("blue\ntree\nfrog\n"), 0o600))

		l, err := wordlist.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 3, l.Len())
	})

	t.Run("only blank lines", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "blank.txt")
		require.NoError(t, os.WriteFile(path, []byte("\n \n\n"), 0o600))

		_, err := wordlist.LoadFile(path)
		assert.ErrorIs(t, err, wordlist.ErrEmptyWordList)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := wordlist.LoadFile(filepath.Join(dir, "missing.txt"))
		assert.ErrorIs(t, err, wordlist.ErrReadWordList)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestEnglish(t *testing.T) {
	t.Parallel()

	l := wordlist.English()
	assert.Same(t, l, wordlist.English())
	assert.Greater(t, l.Len(), 1000)

	short := l.Words(0, 5)
	require.NotEmpty(t, short)
	for _, w := range short {
		assert.LessOrEqual(t, utf8.RuneCountInString(w), 5)
		assert.Regexp(t, `^[a-z]+$`, w)
	}

	// Every preset length range must have candidates.
	for _, r := range [][2]int{{4, 4}, {4, 5}, {5, 5}, {5, 7}, {4, 8}} {
		assert.NotEmpty(t, l.Words(r[0], r[1]), "range %v", r)
	}
}

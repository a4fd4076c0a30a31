package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gematria/normalize"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin case", "ADAM", "adam"},
		{"latin accents", "Ánó", "ano"},
		{"greek tonos", "Λόγος", "λογος"},
		{"greek breathing", "ἀρχή", "αρχη"},
		{"hebrew niqqud", "בְּרֵאשִׁית", "בראשית"},
		{"arabic tashkeel", "بِسْمِ", "بسم"},
		{"arabic hamza alef", "أ", "ا"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, normalize.Fold(tc.in))
		})
	}
}

func TestMarksKeepsCase(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Ano", normalize.Marks("Ánó"))
	assert.Equal(t, "ADAM", normalize.None("ADAM"))
}

func TestFor(t *testing.T) {
	t.Parallel()

	fold, err := normalize.For("")
	require.NoError(t, err)
	assert.Equal(t, "a", fold("Á"))

	marks, err := normalize.For(normalize.ModeMarks)
	require.NoError(t, err)
	assert.Equal(t, "A", marks("Á"))

	_, err = normalize.For("shout")
	assert.ErrorIs(t, err, normalize.ErrUnknownMode)
}

func TestIsIgnorable(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{' ', '\t', '\n', ',', '.', '-', '_', '\'', '־', '،', '؛', 'ְ'} {
		assert.Truef(t, normalize.IsIgnorable(r), "%q should be ignorable", r)
	}
	for _, r := range []rune{'א', 'a', 'Z', 'ω', 'ب', '7'} {
		assert.Falsef(t, normalize.IsIgnorable(r), "%q should not be ignorable", r)
	}
}

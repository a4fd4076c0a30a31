package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gematria/alphabet"
)

func TestBuiltinTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		letters int
		first   rune
		last    rune
		lastVal int
	}{
		{alphabet.TableHebrew, 22, 'א', 'ת', 400},
		{alphabet.TableHebrewGadol, 22, 'א', 'ת', 400},
		{alphabet.TableGreek, 27, 'α', 'ϡ', 900},
		{alphabet.TableArabic, 28, 'ا', 'غ', 1000},
		{alphabet.TableLatin, 26, 'a', 'z', 500},
		{alphabet.TableCombined, 22 + 28 + 27 + 26, 'א', 'z', 500},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tbl, err := alphabet.ByName(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.letters, tbl.Len())

			letters := tbl.Letters()
			assert.Equal(t, tc.first, letters[0])
			assert.Equal(t, tc.last, letters[len(letters)-1])

			s, ok := tbl.Lookup(tc.last)
			require.True(t, ok)
			assert.Equal(t, tc.lastVal, s.Value)
		})
	}

	assert.Equal(t, []string{"arabic", "combined", "greek", "hebrew", "hebrew-gadol", "latin"}, alphabet.Names())
}

func TestByNameUnknown(t *testing.T) {
	t.Parallel()
	_, err := alphabet.ByName("klingon")
	assert.ErrorIs(t, err, alphabet.ErrUnknownTable)
}

func TestFinalForms(t *testing.T) {
	t.Parallel()

	std := alphabet.Hebrew()
	gadol := alphabet.MustByName(alphabet.TableHebrewGadol)

	for _, tc := range []struct {
		final      rune
		std, gadol int
	}{
		{'ך', 20, 500}, {'ם', 40, 600}, {'ן', 50, 700}, {'ף', 80, 800}, {'ץ', 90, 900},
	} {
		v, err := std.ValueOf(tc.final, alphabet.Strict)
		require.NoError(t, err)
		assert.Equal(t, tc.std, v)

		v, err = gadol.ValueOf(tc.final, alphabet.Strict)
		require.NoError(t, err)
		assert.Equal(t, tc.gadol, v)

		// finals are lookup-only
		_, isLetter := std.Index(tc.final)
		assert.False(t, isLetter)
	}
}

func TestResolvePolicies(t *testing.T) {
	t.Parallel()

	tbl := alphabet.Hebrew()

	s, err := tbl.Resolve('ש', alphabet.Strict)
	require.NoError(t, err)
	assert.Equal(t, 300, s.Value)
	assert.Equal(t, "שין", s.Name)

	s, err = tbl.Resolve(' ', alphabet.Strict)
	require.NoError(t, err)
	assert.True(t, s.Ignorable)
	assert.Zero(t, s.Value)

	v, err := tbl.ValueOf('Q', alphabet.Lenient)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = tbl.ValueOf('Q', alphabet.Strict)
	assert.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
}

func TestLookupCaseFallback(t *testing.T) {
	t.Parallel()

	v, err := alphabet.Greek().ValueOf('Ω', alphabet.Strict)
	require.NoError(t, err)
	assert.Equal(t, 800, v)

	v, err = alphabet.Latin().ValueOf('J', alphabet.Strict)
	require.NoError(t, err)
	assert.Equal(t, 600, v)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := alphabet.New("", []alphabet.Symbol{{Rune: 'a', Value: 1}}, nil)
	assert.ErrorIs(t, err, alphabet.ErrEmptyTable)

	_, err = alphabet.New("x", nil, nil)
	assert.ErrorIs(t, err, alphabet.ErrEmptyTable)

	_, err = alphabet.New("x", []alphabet.Symbol{{Rune: 'a', Value: 1}, {Rune: 'a', Value: 2}}, nil)
	assert.ErrorIs(t, err, alphabet.ErrDuplicateSymbol)

	_, err = alphabet.New("x", []alphabet.Symbol{{Rune: 'a', Value: -1}}, nil)
	assert.ErrorIs(t, err, alphabet.ErrInvalidSymbol)

	_, err = alphabet.Merge("x", alphabet.Latin(), alphabet.Latin())
	assert.ErrorIs(t, err, alphabet.ErrDuplicateSymbol)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tbl, err := alphabet.Parse([]byte("name: mini\nletters:\n  - {symbol: \"x\", value: 3, name: \"ex\"}\n"))
	require.NoError(t, err)
	assert.Equal(t, "mini", tbl.Name())
	assert.Equal(t, "ex", tbl.SpelledName('x'))

	_, err = alphabet.Parse([]byte("name: bad\nletters:\n  - {symbol: \"xy\", value: 3}\n"))
	assert.ErrorIs(t, err, alphabet.ErrInvalidSymbol)
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	p, err := alphabet.ParsePolicy("Strict")
	require.NoError(t, err)
	assert.Equal(t, alphabet.Strict, p)
	assert.Equal(t, "lenient", alphabet.Lenient.String())

	_, err = alphabet.ParsePolicy("loose")
	assert.ErrorIs(t, err, alphabet.ErrUnknownPolicy)
}

package encode_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/encode"
	"github.com/katalvlaran/gematria/normalize"
)

func TestEncodeAdam(t *testing.T) {
	t.Parallel()

	enc := encode.New(alphabet.Hebrew(), encode.WithPolicy(alphabet.Strict))
	seq, err := enc.Encode("אדם")
	require.NoError(t, err)
	assert.Equal(t, encode.Sequence{1, 4, 40}, seq)

	sum, err := enc.Sum("אדם")
	require.NoError(t, err)
	assert.Equal(t, 45, sum)
}

func TestEncodeDropsIgnorable(t *testing.T) {
	t.Parallel()

	enc := encode.New(alphabet.Hebrew(), encode.WithPolicy(alphabet.Strict))
	seq, err := enc.Encode("בְּרֵאשִׁית בָּרָא, אֱלֹהִים־")
	require.NoError(t, err)
	assert.Equal(t, encode.Sequence{2, 200, 1, 300, 10, 400, 2, 200, 1, 1, 30, 5, 10, 40}, seq)
}

func TestEncodeEmpty(t *testing.T) {
	t.Parallel()

	enc := encode.New(alphabet.Hebrew())
	for _, in := range []string{"", "   ", ",.-_", "xyz"} {
		seq, err := enc.Encode(in)
		require.NoError(t, err)
		assert.True(t, seq.Empty(), "input %q", in)
	}
}

func TestEncodePolicies(t *testing.T) {
	t.Parallel()

	lenient := encode.New(alphabet.Hebrew())
	seq, err := lenient.Encode("אQב")
	require.NoError(t, err)
	assert.Equal(t, encode.Sequence{1, 2}, seq)

	strict := encode.New(alphabet.Hebrew(), encode.WithPolicy(alphabet.Strict))
	_, err = strict.Encode("אQב")
	require.Error(t, err)
	assert.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "rune 1")
}

func TestEncodeCombinedScripts(t *testing.T) {
	t.Parallel()

	enc := encode.New(alphabet.Combined(), encode.WithPolicy(alphabet.Strict))

	tests := []struct {
		in   string
		want int
	}{
		{"Λόγος", 30 + 70 + 3 + 70 + 200},
		{"بِسْمِ", 2 + 60 + 40},
		{"أحد", 1 + 8 + 4},
		{"Adam", 1 + 4 + 1 + 30},
		{"אדם adam", 45 + 36},
	}
	for _, tc := range tests {
		got, err := enc.Sum(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestEncodeSumRoundTrip(t *testing.T) {
	t.Parallel()

	tbl := alphabet.Combined()
	enc := encode.New(tbl)

	inputs := []string{
		"והו ילי סיט עלמ מהש ללה אכא",
		"בְּרֵאשִׁית בָּרָא אֱלֹהִים",
		"Ἐν ἀρχῇ ἦν ὁ λόγος",
		"الرَّحْمَٰنِ الرَّحِيمِ",
		"Hello, World! 123",
		"",
	}
	for _, in := range inputs {
		seq, err := enc.Encode(in)
		require.NoError(t, err)

		encoded := 0
		for _, v := range seq {
			encoded += v
		}

		direct := 0
		runes := 0
		for _, r := range normalize.Fold(in) {
			runes++
			if normalize.IsIgnorable(r) {
				continue
			}
			v, err := tbl.ValueOf(r, alphabet.Lenient)
			require.NoError(t, err)
			direct += v
		}

		assert.Equal(t, direct, encoded, in)
		assert.LessOrEqual(t, seq.Len(), utf8.RuneCountInString(in))
		assert.LessOrEqual(t, seq.Len(), runes)
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	enc := encode.New(alphabet.Hebrew())
	assert.Equal(t, "אדמ", enc.Decode(encode.Sequence{1, 4, 40}))
	assert.Equal(t, "א", enc.Decode(encode.Sequence{1, 999}))
}

func TestNewPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { encode.New(nil) })
	assert.Panics(t, func() { encode.WithNormalizer(nil) })
}

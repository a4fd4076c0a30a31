package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gematria/aggregate"
	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/classify"
	"github.com/katalvlaran/gematria/encode"
	"github.com/katalvlaran/gematria/gates"
	"github.com/katalvlaran/gematria/lore"
	"github.com/katalvlaran/gematria/report"
)

func TestVerseRecord(t *testing.T) {
	t.Parallel()

	enc := encode.New(alphabet.Hebrew())
	seq, err := enc.Encode("אדם")
	require.NoError(t, err)
	res, ok := aggregate.Aggregate(seq)
	require.True(t, ok)

	var buf bytes.Buffer
	w := report.New(&buf)
	require.NoError(t, w.Verse("אדם", seq, res))

	want := "Verse: אדם\n" +
		"Verse letters: 3\n" +
		"Gematria:[1, 4, 40]\n" +
		"Gematria Items:3\n" +
		"Sum: 45\n" +
		"Product: 160\n" +
		"Inverse of Sum: 0.022222222222222223\n" +
		"Inverse of Product: 0.00625\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestVerseLettersExcludeSpaces(t *testing.T) {
	t.Parallel()

	enc := encode.New(alphabet.Hebrew())
	seq, err := enc.Encode("אב גד")
	require.NoError(t, err)
	res, _ := aggregate.Aggregate(seq)

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Verse("אב גד", seq, res))
	assert.Contains(t, buf.String(), "Verse letters: 4\n")
}

func TestGatesRecords(t *testing.T) {
	t.Parallel()

	l, err := gates.Build(alphabet.Hebrew())
	require.NoError(t, err)

	var buf bytes.Buffer
	w := report.New(&buf)
	require.NoError(t, w.Gates(l.Gates()[:2]))
	assert.Equal(t,
		"1. Gate (א, ב) => Basic Sum: 3, Name Ratio: 0.27\n"+
			"2. Gate (א, ג) => Basic Sum: 4, Name Ratio: 1.34\n",
		buf.String())

	buf.Reset()
	require.NoError(t, w.GateAnalysis(l.Gates()[:1]))
	assert.Equal(t, "1. Gate (א, ב): basic sum=3, names=111/412, name ratio=0.27, name difference=-301\n", buf.String())

	buf.Reset()
	require.NoError(t, w.Comparison(gates.Compare(l)))
	assert.Contains(t, buf.String(), "Difference => 15\n")
	assert.Contains(t, buf.String(), "Ratio => 1.0694\n")
}

func TestClassificationRecords(t *testing.T) {
	t.Parallel()

	p, err := classify.SeferYetzirah(alphabet.Hebrew())
	require.NoError(t, err)

	var buf bytes.Buffer
	w := report.New(&buf)
	require.NoError(t, w.Classification(p))
	assert.Equal(t,
		"3 Mothers: א מ ש\n7 Doubles: ב ג ד כ פ ר ת\n12 Simples: ה ו ז ח ט י ל נ ס ע צ ק\n",
		buf.String())

	buf.Reset()
	cs := classify.Correspondences(p, lore.Default())
	require.NoError(t, w.Correspondences(cs[:1]))
	require.NoError(t, w.Correspondences(cs[7:8]))
	assert.Equal(t,
		"Letter ב: Planet = Saturn, Weekday = Saturday\nLetter ה: Zodiac = Aries, Month = Nisan\n",
		buf.String())
}

func TestSmallRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := report.New(&buf, report.WithStyle(false))

	require.NoError(t, w.Section("GATES"))
	require.NoError(t, w.Sum(45))
	require.NoError(t, w.Word(report.WordRecord{Base: "אדם", Suffix: "אל", BaseSum: 45, SuffixSum: 31, CombinedSum: 76}))
	require.NoError(t, w.Letters([]report.LetterRow{{Symbol: alphabet.Symbol{Rune: 'א', Value: 1, Name: "אלף"}, NameValue: 111}}))
	require.NoError(t, w.Sefirot([]report.SefirahRow{{Sefirah: lore.Sefirah{Index: 1, Name: "Keter", Hebrew: "כתר"}, Value: 620}}))
	require.NoError(t, w.Triplets([]report.TripletRow{{Text: "והו", Sum: 17}, {Text: "ילי", Sum: 50}}))
	require.NoError(t, w.Ratios("אב", aggregate.Ratios(encode.Sequence{1, 2, 1})))
	require.NoError(t, w.Acrostic("והיל"))

	want := "=== GATES ===\n" +
		"Gematria value: 45\n" +
		"Base word: אדם => Gematria: 45\n" +
		"Suffix: אל => Gematria: 31\n" +
		"Combined Gematria: 76\n" +
		"Letter: א (Value: 1), Name: אלף, Name Gematria: 111\n" +
		"1. Keter / כתר => Gematria: 620\n" +
		"1. והו => 17\n" +
		"2. ילי => 50\n" +
		"Triplets: והו, ילי => Ratio: 0.34\n" +
		"Verse: אב\n" +
		"Ratios: [2, 0.5]\n" +
		"\n" +
		"Acrostic: והיל\n"
	assert.Equal(t, want, buf.String())
}

func TestRunesAndList(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[]", report.List(nil))
	assert.Equal(t, "[1, 4, 40]", report.List(encode.Sequence{1, 4, 40}))
	assert.Equal(t, "א ב", report.Runes([]rune("אב")))
}

type failingWriter struct{ n int }

var errDiskFull = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errDiskFull
}

func TestStickyError(t *testing.T) {
	t.Parallel()

	fw := &failingWriter{}
	w := report.New(fw)
	assert.ErrorIs(t, w.Sum(1), errDiskFull)
	assert.ErrorIs(t, w.Sum(2), errDiskFull)
	assert.ErrorIs(t, w.Err(), errDiskFull)
	assert.Equal(t, 1, fw.n)
}

func TestNewPanicsOnNil(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { report.New(nil) })
	assert.False(t, report.IsTerminal(&bytes.Buffer{}))
}

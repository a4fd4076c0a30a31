package lore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gematria/lore"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	l := lore.Default()
	assert.Equal(t, []rune("אמש"), l.Mothers())
	assert.Equal(t, []rune("בגדכפרת"), l.Doubles())

	sef := l.Sefirot()
	require.Len(t, sef, 10)
	assert.Equal(t, lore.Sefirah{Index: 1, Name: "Keter", Hebrew: "כתר"}, sef[0])
	assert.Equal(t, "מלכות", sef[9].Hebrew)

	dirs := l.Directions()
	require.Len(t, dirs, 6)
	assert.Equal(t, lore.Direction{Name: "North", DX: 0.7, DY: 0.7}, dirs[4])
	assert.InDelta(t, 5.5, l.SpokeLength(), 1e-9)

	trip := l.Triplets()
	require.Len(t, trip, 72)
	assert.Equal(t, "והו", trip[0])
	assert.Equal(t, "םום", trip[71])
}

func TestCorrespondences(t *testing.T) {
	t.Parallel()

	l := lore.Default()
	for _, r := range l.Doubles() {
		_, ok := l.Planet(r)
		assert.True(t, ok, "planet for %c", r)
	}

	p, ok := l.Planet('ב')
	require.True(t, ok)
	assert.Equal(t, "Saturn", p.Name)
	assert.Equal(t, "Saturday", p.Weekday)

	s, ok := l.Sign('ה')
	require.True(t, ok)
	assert.Equal(t, "Aries", s.Zodiac)
	assert.Equal(t, "Nisan", s.Month)

	_, ok = l.Sign('א')
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	l := lore.Default()
	m := l.Mothers()
	m[0] = 'x'
	assert.Equal(t, 'א', l.Mothers()[0])
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"no mothers", "doubles: [ב]\nsefirot: [{name: Keter, hebrew: כתר}]\n", lore.ErrMissingData},
		{"long letter", "mothers: [אב]\ndoubles: [ב]\nsefirot: [{name: Keter}]\n", lore.ErrInvalidLetter},
		{"no sefirot", "mothers: [א]\ndoubles: [ב]\n", lore.ErrMissingData},
		{"short triplet", "mothers: [א]\ndoubles: [ב]\nsefirot: [{name: Keter}]\ntriplets: [[אב]]\n", lore.ErrInvalidTriplet},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := lore.Parse([]byte(tc.raw))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := lore.Parse([]byte("mothers: {"))
	assert.Error(t, err)
}

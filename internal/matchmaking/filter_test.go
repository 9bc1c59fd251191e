package matchmaking

import (
	"mmr-matchmaker/internal/domain"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rated(ratings ...int) []domain.Player {
	players := make([]domain.Player, len(ratings))
	for i, r := range ratings {
		players[i] = domain.Player{ID: int64(i + 1), Name: "p" + string(rune('a'+i)), Rating: r}
	}
	return players
}

func ratingsOf(players []domain.Player) []int {
	return lo.Map(players, func(p domain.Player, _ int) int { return p.Rating })
}

func TestFilterPool(t *testing.T) {
	roster := rated(2500, 100, 1000, 999, 2000, 2001, 1500)

	tests := []struct {
		name      string
		criterion RangeCriterion
		want      []int
	}{
		{name: "all", criterion: All(), want: []int{2500, 100, 1000, 999, 2000, 2001, 1500}},
		{name: "less than is exclusive", criterion: LessThan(1000), want: []int{100, 999}},
		{name: "between is inclusive", criterion: Between(1000, 2000), want: []int{1000, 2000, 1500}},
		{name: "greater than is exclusive", criterion: GreaterThan(2000), want: []int{2500, 2001}},
		{name: "nothing matches", criterion: GreaterThan(5000), want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPool(roster, tt.criterion)
			assert.Equal(t, tt.want, ratingsOf(got))
		})
	}

	assert.Equal(t, []int{2500, 100, 1000, 999, 2000, 2001, 1500}, ratingsOf(roster), "input must not be mutated")
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want RangeCriterion
	}{
		{in: "", want: All()},
		{in: "All", want: All()},
		{in: "low", want: LessThan(1000)},
		{in: "MID", want: Between(1000, 2000)},
		{in: " high ", want: GreaterThan(2000)},
		{in: "lt:750", want: LessThan(750)},
		{in: "gt:1200", want: GreaterThan(1200)},
		{in: "between:10-20", want: Between(10, 20)},
		{in: "between:7-7", want: Between(7, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, in := range []string{"medium", "lt:", "gt:abc", "between:20-10", "between:5", "eq:5"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseRange(in)
			assert.ErrorIs(t, err, domain.ErrInvalidRange)
		})
	}
}

func TestRangeCriterionStringRoundTrip(t *testing.T) {
	for _, c := range []RangeCriterion{All(), LessThan(3), Between(1, 9), GreaterThan(40)} {
		got, err := ParseRange(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

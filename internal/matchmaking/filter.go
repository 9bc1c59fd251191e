package matchmaking

import (
	"fmt"
	"mmr-matchmaker/internal/domain"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type RangeKind int

const (
	RangeAll RangeKind = iota
	RangeLessThan
	RangeBetween
	RangeGreaterThan
)

// Dashboard preset boundaries.
const (
	LowCeiling = 1000
	HighFloor  = 2000
)

// RangeCriterion selects players by rating. Between is inclusive on both ends.
type RangeCriterion struct {
	Kind RangeKind
	Low  int
	High int
}

func All() RangeCriterion { return RangeCriterion{Kind: RangeAll} }

func LessThan(threshold int) RangeCriterion {
	return RangeCriterion{Kind: RangeLessThan, High: threshold}
}

func Between(low, high int) RangeCriterion {
	return RangeCriterion{Kind: RangeBetween, Low: low, High: high}
}

func GreaterThan(threshold int) RangeCriterion {
	return RangeCriterion{Kind: RangeGreaterThan, Low: threshold}
}

func (c RangeCriterion) Validate() error {
	switch c.Kind {
	case RangeAll, RangeLessThan, RangeGreaterThan:
		return nil
	case RangeBetween:
		if c.Low > c.High {
			return fmt.Errorf("%w: between %d and %d", domain.ErrInvalidRange, c.Low, c.High)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", domain.ErrInvalidRange, c.Kind)
	}
}

func (c RangeCriterion) Matches(rating int) bool {
	switch c.Kind {
	case RangeLessThan:
		return rating < c.High
	case RangeBetween:
		return rating >= c.Low && rating <= c.High
	case RangeGreaterThan:
		return rating > c.Low
	default:
		return true
	}
}

func (c RangeCriterion) String() string {
	switch c.Kind {
	case RangeLessThan:
		return fmt.Sprintf("lt:%d", c.High)
	case RangeBetween:
		return fmt.Sprintf("between:%d-%d", c.Low, c.High)
	case RangeGreaterThan:
		return fmt.Sprintf("gt:%d", c.Low)
	default:
		return "all"
	}
}

// ParseRange accepts the presets all, low, mid and high as well as the
// explicit forms lt:N, gt:N and between:LO-HI. An empty string means all.
func ParseRange(s string) (RangeCriterion, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "", "all":
		return All(), nil
	case "low":
		return LessThan(LowCeiling), nil
	case "mid":
		return Between(LowCeiling, HighFloor), nil
	case "high":
		return GreaterThan(HighFloor), nil
	}

	kind, arg, ok := strings.Cut(s, ":")
	if !ok {
		return RangeCriterion{}, fmt.Errorf("%w: %q", domain.ErrInvalidRange, s)
	}

	var c RangeCriterion
	switch kind {
	case "lt":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return RangeCriterion{}, fmt.Errorf("%w: %q", domain.ErrInvalidRange, s)
		}
		c = LessThan(n)
	case "gt":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return RangeCriterion{}, fmt.Errorf("%w: %q", domain.ErrInvalidRange, s)
		}
		c = GreaterThan(n)
	case "between":
		lowArg, highArg, ok := strings.Cut(arg, "-")
		if !ok {
			return RangeCriterion{}, fmt.Errorf("%w: %q", domain.ErrInvalidRange, s)
		}
		low, errLow := strconv.Atoi(lowArg)
		high, errHigh := strconv.Atoi(highArg)
		if errLow != nil || errHigh != nil {
			return RangeCriterion{}, fmt.Errorf("%w: %q", domain.ErrInvalidRange, s)
		}
		c = Between(low, high)
	default:
		return RangeCriterion{}, fmt.Errorf("%w: %q", domain.ErrInvalidRange, s)
	}

	if err := c.Validate(); err != nil {
		return RangeCriterion{}, err
	}
	return c, nil
}

// FilterPool keeps the players whose rating satisfies c, in input order.
func FilterPool(players []domain.Player, c RangeCriterion) []domain.Player {
	return lo.Filter(players, func(p domain.Player, _ int) bool {
		return c.Matches(p.Rating)
	})
}

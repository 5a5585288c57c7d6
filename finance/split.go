package finance

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTotal means the quick-split total is missing or not positive.
	ErrInvalidTotal = errors.New("enter a positive total amount to split")
	// ErrTooFewParticipants means fewer than 2 named participants were given.
	ErrTooFewParticipants = errors.New("at least 2 participant names required")
)

// SplitEvenly divides total across the named participants and returns the
// per-person share keyed by name. Blank names are excluded from the split.
// Every named participant gets the identical share, rounded to cents; the
// rounding remainder is not redistributed, so the shares can sum to
// slightly less or more than total. The split only pre-fills editable
// amounts, the stored split total is recomputed from the final amounts.
func SplitEvenly(total decimal.Decimal, participantNames []string) (map[string]decimal.Decimal, error) {
	if !total.IsPositive() {
		return nil, ErrInvalidTotal
	}

	named := make([]string, 0, len(participantNames))
	for _, name := range participantNames {
		if strings.TrimSpace(name) != "" {
			named = append(named, name)
		}
	}
	if len(named) < 2 {
		return nil, ErrTooFewParticipants
	}

	perPerson := total.Div(decimal.NewFromInt(int64(len(named)))).Round(2)

	shares := make(map[string]decimal.Decimal, len(named))
	for _, name := range named {
		shares[name] = perPerson
	}
	return shares, nil
}

package bank

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Statements print amounts with grouping spaces ("1 234,56"), an optional
// explicit plus, and any of three dash variants for negatives.
var amountCleaner = strings.NewReplacer(
	"–", "-", // en dash
	"−", "-", // minus sign
	" ", "", // no-break space
	" ", "", // narrow no-break space
	" ", "",
	"+", "",
)

// ParseAmount parses a statement amount string into a decimal. Both comma
// and dot are accepted as the decimal separator, grouping separators and an
// explicit plus are stripped, and a leading dash of any variant negates the
// value. An unmarked amount parses positive; per-format sign conventions
// are applied by the caller.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = amountCleaner.Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	// With both separators present the rightmost one is the decimal mark
	// and the other groups thousands.
	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") > 1 {
			return decimal.Zero, fmt.Errorf("ambiguous amount %q", s)
		}
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount: %w", err)
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

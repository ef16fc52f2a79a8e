// Package tinkoff parses Tinkoff statement exports.
package tinkoff

import (
	"iter"
	"regexp"
	"strings"
	"time"

	"github.com/smartfin/statement-importer/internal/bank"
	"github.com/smartfin/statement-importer/internal/category"
	"github.com/smartfin/statement-importer/internal/types"
)

// Tinkoff prints one transaction per line: date, signed amount, description.
// The printed sign is authoritative and an unmarked amount is income.
type Tinkoff struct{}

const dateLayout = "02.01.2006"

var rowRe = regexp.MustCompile(`^(\d{2}\.\d{2}\.\d{4})\s+([+-]?\d+[.,]\d{2})\s+(.+)$`)

// New creates a Tinkoff statement parser.
func New() *Tinkoff {
	return &Tinkoff{}
}

// Name returns the bank identifier.
func (t *Tinkoff) Name() string {
	return string(bank.Tinkoff)
}

// Categories returns an empty mapping: Tinkoff statements carry no
// category column, so candidates import uncategorized.
func (t *Tinkoff) Categories() category.Mapping {
	return category.Mapping{}
}

// Parse scans the statement one line at a time.
func (t *Tinkoff) Parse(lines []types.RawLine) iter.Seq[types.Candidate] {
	return bank.Scan(lines, []bank.Rule{
		{Window: 1, Match: matchRow},
	})
}

func matchRow(win []types.RawLine) (types.Candidate, int, bool) {
	m := rowRe.FindStringSubmatch(win[0].Text)
	if m == nil {
		return types.Candidate{}, 0, false
	}

	date, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return types.Candidate{}, 0, false
	}
	amount, err := bank.ParseAmount(m[2])
	if err != nil {
		return types.Candidate{}, 0, false
	}

	return types.Candidate{
		Date:        date,
		Amount:      amount,
		Description: strings.TrimSpace(m[3]),
	}, 1, true
}

// Ensure Tinkoff implements the Parser interface
var _ bank.Parser = (*Tinkoff)(nil)

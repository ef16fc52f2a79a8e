// Package vtb parses VTB statement exports.
package vtb

import (
	"iter"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartfin/statement-importer/internal/bank"
	"github.com/smartfin/statement-importer/internal/category"
	"github.com/smartfin/statement-importer/internal/types"
)

// VTB account statements come in two layouts. The table layout prints a
// full row per transaction with separate income and expense columns; the
// occupied column is the one whose sibling holds a 0.00 placeholder, and
// the expense column is negative regardless of how it is printed. The
// simple layout prints a date-led line with a single RUB amount (always an
// expense) and usually carries the description on the following line.
type VTB struct{}

const dateLayout = "02.01.2006"

var (
	tableRowRe = regexp.MustCompile(`^(\d{2}\.\d{2}\.\d{4})\s+\d{2}:\d{2}:\d{2}\s+\d{2}\.\d{2}\.\d{4}\s+-?[\d.,]+\s+RUB\s+([\d.,]+)\s+([\d.,]+)\s+RUB\s+(.+)$`)
	dateLeadRe = regexp.MustCompile(`^(\d{2}\.\d{2}\.\d{4})`)
	amountRe   = regexp.MustCompile(`(-?[\d.,]+)\s*RUB`)
)

// footerPrefixes mark statement boilerplate that must not be consumed as a
// transaction description.
var footerPrefixes = []string{"Спасибо", "Всегда ваш", "Страница"}

var keywordMapping = category.Mapping{
	Keywords: []category.Keyword{
		{Substring: "zapravki", Category: "Транспорт"},
		{Substring: "fuel", Category: "Транспорт"},
		{Substring: "бензин", Category: "Транспорт"},
		{Substring: "wildberries", Category: "Покупки"},
		{Substring: "товар", Category: "Покупки"},
		{Substring: "перевод", Category: "Переводы"},
		{Substring: "перечисление", Category: "Переводы"},
		{Substring: "счет", Category: "Переводы"},
		{Substring: "оплата", Category: "Покупки"},
	},
	Default: "Покупки",
}

// New creates a VTB statement parser.
func New() *VTB {
	return &VTB{}
}

// Name returns the bank identifier.
func (v *VTB) Name() string {
	return string(bank.VTB)
}

// Categories returns the VTB keyword mapping.
func (v *VTB) Categories() category.Mapping {
	return keywordMapping
}

// Parse scans the statement, trying the table layout before the simple one.
func (v *VTB) Parse(lines []types.RawLine) iter.Seq[types.Candidate] {
	return bank.Scan(lines, []bank.Rule{
		{Window: 1, Match: matchTableRow},
		{Window: 2, Match: matchSimpleRow},
	})
}

// matchTableRow handles rows carrying both the income and expense columns.
func matchTableRow(win []types.RawLine) (types.Candidate, int, bool) {
	m := tableRowRe.FindStringSubmatch(win[0].Text)
	if m == nil {
		return types.Candidate{}, 0, false
	}

	date, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return types.Candidate{}, 0, false
	}
	income, err := bank.ParseAmount(m[2])
	if err != nil {
		return types.Candidate{}, 0, false
	}
	expense, err := bank.ParseAmount(m[3])
	if err != nil {
		return types.Candidate{}, 0, false
	}

	// Exactly one column may be occupied; anything else is ambiguous and
	// the row is left to the fallback rule.
	var amount decimal.Decimal
	switch {
	case income.IsZero() && !expense.IsZero():
		amount = expense.Abs().Neg()
	case expense.IsZero() && !income.IsZero():
		amount = income.Abs()
	default:
		return types.Candidate{}, 0, false
	}

	desc := strings.TrimSpace(m[4])
	return types.Candidate{
		Date:          date,
		Amount:        amount,
		Description:   desc,
		CategoryLabel: desc,
	}, 1, true
}

// matchSimpleRow handles the date-led layout with one RUB amount. The
// amount is treated as an expense whatever its printed sign.
func matchSimpleRow(win []types.RawLine) (types.Candidate, int, bool) {
	current := win[0].Text
	dm := dateLeadRe.FindStringSubmatch(current)
	if dm == nil {
		return types.Candidate{}, 0, false
	}
	date, err := time.Parse(dateLayout, dm[1])
	if err != nil {
		return types.Candidate{}, 0, false
	}

	am := amountRe.FindStringSubmatch(current)
	if am == nil {
		return types.Candidate{}, 0, false
	}
	amount, err := bank.ParseAmount(am[1])
	if err != nil {
		return types.Candidate{}, 0, false
	}
	if amount.IsPositive() {
		amount = amount.Neg()
	}

	desc, consumed := descriptionFor(current, win[1].Text)
	return types.Candidate{
		Date:          date,
		Amount:        amount,
		Description:   desc,
		CategoryLabel: desc,
	}, consumed, true
}

// descriptionFor prefers the following line as the description, falling
// back to whatever trails the last RUB marker on the row itself.
func descriptionFor(current, next string) (string, int) {
	if !dateLeadRe.MatchString(next) && !isFooter(next) {
		return next, 2
	}
	if idx := strings.LastIndex(current, "RUB"); idx >= 0 && idx+3 < len(current) {
		return strings.TrimSpace(current[idx+3:]), 1
	}
	return "", 1
}

func isFooter(line string) bool {
	for _, prefix := range footerPrefixes {
		if len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}

// Ensure VTB implements the Parser interface
var _ bank.Parser = (*VTB)(nil)

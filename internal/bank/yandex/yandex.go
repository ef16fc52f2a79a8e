// Package yandex parses Yandex Bank statement exports.
package yandex

import (
	"iter"
	"regexp"
	"strings"
	"time"

	"github.com/smartfin/statement-importer/internal/bank"
	"github.com/smartfin/statement-importer/internal/category"
	"github.com/smartfin/statement-importer/internal/types"
)

// Yandex spreads each transaction over a block of lines: an operation
// description, the date, the time and a signed rouble amount. A block is
// accepted or rejected as a whole; partial blocks never produce a
// candidate. Some exports collapse date and time into one "dd.mm.yyyy в
// hh:mm" line, handled by a narrower fallback block.
type Yandex struct{}

const dateTimeLayout = "02.01.2006 15:04"

var (
	dateOnlyRe = regexp.MustCompile(`^(\d{2}\.\d{2}\.\d{4})$`)
	timeOnlyRe = regexp.MustCompile(`^(\d{2}:\d{2})$`)
	dateTimeRe = regexp.MustCompile(`^(\d{2}\.\d{2}\.\d{4})\s+в\s+(\d{2}:\d{2})$`)
	amountRe   = regexp.MustCompile(`^([+\-–−]\s*[\d\s  ]+[.,]\d{2})\s*₽$`)
)

// operationPrefixes mark the lines that open a transaction block.
var operationPrefixes = []string{"Оплата", "Входящий перевод", "Исходящий перевод"}

var keywordMapping = category.Mapping{
	Keywords: []category.Keyword{
		{Substring: "pyaterochka", Category: "Продукты"},
		{Substring: "magnit", Category: "Продукты"},
		{Substring: "krasnoe&beloe", Category: "Продукты"},
		{Substring: "lenta", Category: "Продукты"},
		{Substring: "apteka", Category: "Аптеки"},
		{Substring: "yandex.market", Category: "Покупки"},
		{Substring: "перевод сбп", Category: "Переводы"},
	},
	Default: "Покупки",
}

// New creates a Yandex Bank statement parser.
func New() *Yandex {
	return &Yandex{}
}

// Name returns the bank identifier.
func (y *Yandex) Name() string {
	return string(bank.Yandex)
}

// Categories returns the Yandex keyword mapping.
func (y *Yandex) Categories() category.Mapping {
	return keywordMapping
}

// Parse scans the statement in four-line blocks, falling back to the
// combined date-time layout.
func (y *Yandex) Parse(lines []types.RawLine) iter.Seq[types.Candidate] {
	return bank.Scan(lines, []bank.Rule{
		{Window: 4, Match: matchBlock},
		{Window: 3, Match: matchCombinedBlock},
	})
}

// matchBlock handles description / date / time / amount blocks.
func matchBlock(win []types.RawLine) (types.Candidate, int, bool) {
	desc := win[0].Text
	if !isOperation(desc) {
		return types.Candidate{}, 0, false
	}
	dm := dateOnlyRe.FindStringSubmatch(win[1].Text)
	if dm == nil {
		return types.Candidate{}, 0, false
	}
	tm := timeOnlyRe.FindStringSubmatch(win[2].Text)
	if tm == nil {
		return types.Candidate{}, 0, false
	}
	cand, ok := buildCandidate(desc, dm[1], tm[1], win[3].Text)
	if !ok {
		return types.Candidate{}, 0, false
	}
	return cand, 4, true
}

// matchCombinedBlock handles description / "date в time" / amount blocks.
func matchCombinedBlock(win []types.RawLine) (types.Candidate, int, bool) {
	desc := win[0].Text
	if !isOperation(desc) {
		return types.Candidate{}, 0, false
	}
	m := dateTimeRe.FindStringSubmatch(win[1].Text)
	if m == nil {
		return types.Candidate{}, 0, false
	}
	cand, ok := buildCandidate(desc, m[1], m[2], win[2].Text)
	if !ok {
		return types.Candidate{}, 0, false
	}
	return cand, 3, true
}

func buildCandidate(desc, dateStr, timeStr, amountLine string) (types.Candidate, bool) {
	date, err := time.Parse(dateTimeLayout, dateStr+" "+timeStr)
	if err != nil {
		return types.Candidate{}, false
	}
	am := amountRe.FindStringSubmatch(amountLine)
	if am == nil {
		return types.Candidate{}, false
	}
	amount, err := bank.ParseAmount(am[1])
	if err != nil {
		return types.Candidate{}, false
	}

	desc = strings.TrimSpace(desc)
	return types.Candidate{
		Date:          date,
		Amount:        amount,
		Description:   desc,
		CategoryLabel: desc,
	}, true
}

func isOperation(line string) bool {
	for _, prefix := range operationPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// Ensure Yandex implements the Parser interface
var _ bank.Parser = (*Yandex)(nil)

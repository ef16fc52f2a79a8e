// Package sber parses Sberbank statement exports.
package sber

import (
	"iter"
	"regexp"
	"strings"
	"time"

	"github.com/smartfin/statement-importer/internal/bank"
	"github.com/smartfin/statement-importer/internal/category"
	"github.com/smartfin/statement-importer/internal/types"
)

// Sber statements spread each transaction over two lines: a header with
// operation date, time, bank category and amount, then a detail line with
// the processing date, an authorization code and the description. Only a
// plus marks income; an unmarked amount is an expense and parses negative.
type Sber struct{}

const dateTimeLayout = "02.01.2006 15:04"

var (
	headerRe = regexp.MustCompile(`^(\d{2}\.\d{2}\.\d{4})\s+(\d{2}:\d{2})\s+(\D+?)\s+([-+]?\d+,\d{2})$`)
	detailRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}\s+\d{6}\s+(.+)$`)
)

// labelMapping translates Sberbank's printed category labels to internal
// category names. Labels outside the table keep their own name.
var labelMapping = category.Mapping{
	Labels: map[string]string{
		"супермаркеты":                          "Продукты",
		"рестораны и кафе":                      "Кафе и рестораны",
		"здоровье и красота":                    "Здоровье",
		"одежда и аксессуары":                   "Одежда",
		"коммунальные платежи, связь, интернет": "Коммунальные услуги",
		"автомобиль":                            "Транспорт",
		"все для дома":                          "Дом",
		"прочие расходы":                        "Прочее",
		"прочие операции":                       "Прочее",
		"перевод на карту":                      "Переводы",
		"перевод с карты":                       "Переводы",
		"перевод сбп":                           "Переводы",
		"внесение наличных":                     "Пополнение",
		"возврат, отмена операции":              "Возврат",
	},
}

// New creates a Sberbank statement parser.
func New() *Sber {
	return &Sber{}
}

// Name returns the bank identifier.
func (s *Sber) Name() string {
	return string(bank.Sberbank)
}

// Categories returns the static Sberbank label mapping.
func (s *Sber) Categories() category.Mapping {
	return labelMapping
}

// Parse scans the statement in two-line windows.
func (s *Sber) Parse(lines []types.RawLine) iter.Seq[types.Candidate] {
	return bank.Scan(lines, []bank.Rule{
		{Window: 2, Match: matchPair},
	})
}

func matchPair(win []types.RawLine) (types.Candidate, int, bool) {
	header := headerRe.FindStringSubmatch(win[0].Text)
	if header == nil {
		return types.Candidate{}, 0, false
	}
	detail := detailRe.FindStringSubmatch(win[1].Text)
	if detail == nil {
		return types.Candidate{}, 0, false
	}

	date, err := time.Parse(dateTimeLayout, header[1]+" "+header[2])
	if err != nil {
		return types.Candidate{}, 0, false
	}
	amount, err := bank.ParseAmount(header[4])
	if err != nil {
		return types.Candidate{}, 0, false
	}
	if !strings.HasPrefix(header[4], "+") {
		amount = amount.Abs().Neg()
	}

	return types.Candidate{
		Date:          date,
		Amount:        amount,
		Description:   strings.TrimSpace(detail[1]),
		CategoryLabel: strings.TrimSpace(header[3]),
	}, 2, true
}

// Ensure Sber implements the Parser interface
var _ bank.Parser = (*Sber)(nil)

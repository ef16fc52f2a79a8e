package sber

import (
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfin/statement-importer/internal/types"
)

func rawLines(texts ...string) []types.RawLine {
	lines := make([]types.RawLine, len(texts))
	for i, text := range texts {
		lines[i] = types.RawLine{Text: text, Line: i}
	}
	return lines
}

func TestParsePair(t *testing.T) {
	lines := rawLines(
		"01.03.2024 12:30 Супермаркеты 1234,56",
		"02.03.2024 123456 PYATEROCHKA 123 MOSCOW RUS",
	)

	got := slices.Collect(New().Parse(lines))
	require.Len(t, got, 1)

	assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), got[0].Date)
	// No plus marker means an expense for this format.
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("-1234.56")))
	assert.Equal(t, "PYATEROCHKA 123 MOSCOW RUS", got[0].Description)
	assert.Equal(t, "Супермаркеты", got[0].CategoryLabel)
}

func TestParseIncomeKeepsPlusSign(t *testing.T) {
	lines := rawLines(
		"05.03.2024 09:00 Перевод на карту +500,00",
		"05.03.2024 654321 Перевод от Иванова И.И.",
	)

	got := slices.Collect(New().Parse(lines))
	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("500.00")))
}

func TestParseExplicitMinus(t *testing.T) {
	lines := rawLines(
		"05.03.2024 09:00 Рестораны и кафе -800,00",
		"06.03.2024 111111 KFC MOSCOW",
	)

	got := slices.Collect(New().Parse(lines))
	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("-800.00")))
}

func TestParseRejectsPairWithoutDetailLine(t *testing.T) {
	// Header followed by another header: the first window is a miss and the
	// scan recovers on the second header.
	lines := rawLines(
		"01.03.2024 12:30 Супермаркеты 100,00",
		"02.03.2024 11:00 Здоровье и красота 200,00",
		"02.03.2024 222222 APTEKA 5",
	)

	got := slices.Collect(New().Parse(lines))
	require.Len(t, got, 1)
	assert.Equal(t, "APTEKA 5", got[0].Description)
	assert.Equal(t, "Здоровье и красота", got[0].CategoryLabel)
}

func TestParseIgnoresBoilerplate(t *testing.T) {
	lines := rawLines(
		"СБЕРБАНК",
		"Выписка по счёту дебетовой карты",
		"ДАТА ОПЕРАЦИИ КАТЕГОРИЯ СУММА",
		"01.03.2024 12:30 Супермаркеты 100,00",
		"01.03.2024 999999 MAGNIT MM KRASNODAR",
		"Продолжение на следующей странице",
	)

	got := slices.Collect(New().Parse(lines))
	require.Len(t, got, 1)
	assert.Equal(t, "MAGNIT MM KRASNODAR", got[0].Description)
}

func TestCategoriesMapping(t *testing.T) {
	m := New().Categories()
	assert.Equal(t, "Продукты", m.Target("Супермаркеты"))
	assert.Equal(t, "Переводы", m.Target("Перевод СБП"))
	// Unmapped labels keep their own name.
	assert.Equal(t, "Путешествия", m.Target("Путешествия"))
}

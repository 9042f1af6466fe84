package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		expected string
	}{
		{name: "Valor com milhares usa ponto como separador", value: fptr(1234567), expected: "$ 1.234.567"},
		{name: "Centavos são arredondados fora", value: fptr(18000.49), expected: "$ 18.000"},
		{name: "Negativo carrega o sinal antes do símbolo", value: fptr(-50000), expected: "-$ 50.000"},
		{name: "Nil formata como zero", value: nil, expected: "$ 0"},
		{name: "NaN formata como zero, nunca NaN", value: fptr(math.NaN()), expected: "$ 0"},
		{name: "Infinito formata como zero", value: fptr(math.Inf(1)), expected: "$ 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.value))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "87.5%", Percent(fptr(87.52)))
	assert.Equal(t, "0.0%", Percent(nil))
	assert.Equal(t, "0.0%", Percent(fptr(math.NaN())))
}

func TestRoas(t *testing.T) {
	assert.Equal(t, "2.50x", Roas(fptr(2.5)))
	assert.Equal(t, "0.00x", Roas(nil))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "12.345", Count(iptr(12345)))
	assert.Equal(t, "0", Count(nil))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "2 ene 2026", Date(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 dic 2025", Date(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "-", Date(time.Time{}))
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "15 mar 2026", DateString("2026-03-15T10:30:00Z"))
	assert.Equal(t, "15 mar 2026", DateString("2026-03-15"))
	assert.Equal(t, "-", DateString(""))
	assert.Equal(t, "-", DateString("no es una fecha"))
}

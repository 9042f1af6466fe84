// Package format formata valores para exibição no locale es-CO
// (pesos colombianos sem decimais, separador de milhar com ponto).
// Todos os helpers toleram valores ausentes ou inválidos vindos do
// backend e nunca produzem "NaN" na saída.
package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/lucidanalytics/lucid-analytics-client/pkg/utils"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

var shortMonths = []string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// Currency formata um valor monetário em COP, sem casas decimais
func Currency(v *float64) string {
	f := utils.SafeFloat(v)

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	return sign + "$ " + printer.Sprint(number.Decimal(
		math.Round(f),
		number.MaxFractionDigits(0),
	))
}

// Number formata um valor numérico com separador de milhar
func Number(v *float64) string {
	f := utils.SafeFloat(v)
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}

// Count formata uma contagem inteira
func Count(v *int) string {
	return printer.Sprint(number.Decimal(utils.SafeInt(v)))
}

// Percent formata um percentual com uma casa decimal
func Percent(v *float64) string {
	return fmt.Sprintf("%.1f%%", utils.SafeFloat(v))
}

// Roas formata um multiplicador de retorno, ex: "2.50x"
func Roas(v *float64) string {
	return fmt.Sprintf("%.2fx", utils.SafeFloat(v))
}

// Date formata uma data no estilo curto es-CO, ex: "2 ene 2026"
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

// DateString formata uma data serializada pelo backend (RFC3339 ou YYYY-MM-DD)
func DateString(s string) string {
	if s == "" {
		return "-"
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return "-"
		}
	}

	return Date(t)
}

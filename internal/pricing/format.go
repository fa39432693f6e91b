package pricing

import (
	"fmt"
	"math"
	"strconv"
)

// Currency is a display currency with its conversion rate from the base
// currency (rubles).
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
}

// Currencies lists the supported display currencies.
var Currencies = []Currency{
	{Code: "RUB", Symbol: "₽", Name: "Рубль", Rate: 1},
	{Code: "USD", Symbol: "$", Name: "Доллар", Rate: 0.011},
	{Code: "EUR", Symbol: "€", Name: "Евро", Rate: 0.010},
}

// Format converts a base-currency amount into a display string: rubles are
// rounded to whole units with space-grouped thousands and a trailing sign,
// dollars and euros get two decimals and a leading sign. Unknown currency
// codes fall back to ruble formatting without conversion.
func Format(amount float64, code string) string {
	for _, c := range Currencies {
		if c.Code != code {
			continue
		}
		converted := amount * c.Rate
		switch c.Code {
		case "USD", "EUR":
			return c.Symbol + strconv.FormatFloat(converted, 'f', 2, 64)
		default:
			return groupThousands(int64(math.Round(converted))) + " " + c.Symbol
		}
	}
	return groupThousands(int64(math.Round(amount))) + " ₽"
}

// groupThousands renders n with a space between each group of three digits.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, d)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// FormatWithCurrency is like Format but reports whether the code was known.
func FormatWithCurrency(amount float64, code string) (string, error) {
	for _, c := range Currencies {
		if c.Code == code {
			return Format(amount, code), nil
		}
	}
	return "", fmt.Errorf("unknown currency code %q", code)
}

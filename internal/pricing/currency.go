package pricing

import (
	"fmt"
	"math"
	"strconv"
)

type Currency string

const (
	KES Currency = "KES"
	USD Currency = "USD"
)

// Listing prices are stored in KES; USD is derived with a fixed rate
// (1 USD = 130 KES), not a live feed.
const kesPerUSD = 130.0

func ParseCurrency(s string) (Currency, bool) {
	switch Currency(s) {
	case KES, USD:
		return Currency(s), true
	}
	return "", false
}

// Convert moves an amount between KES and USD at the fixed rate.
// No rounding happens here; rounding belongs to the fee step and to
// display formatting.
func Convert(amount float64, from, to Currency) float64 {
	if from == to {
		return amount
	}
	if from == KES && to == USD {
		return amount / kesPerUSD
	}
	if from == USD && to == KES {
		return amount * kesPerUSD
	}
	return amount
}

// Format renders an amount for display: "$1,234" for USD,
// "KES 30,000" for KES. Both round to whole units.
func Format(amount float64, cur Currency) string {
	rounded := int64(math.Round(amount))
	if cur == USD {
		return "$" + groupThousands(rounded)
	}
	return "KES " + groupThousands(rounded)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) > 3 {
		var out []byte
		lead := len(s) % 3
		if lead > 0 {
			out = append(out, s[:lead]...)
		}
		for i := lead; i < len(s); i += 3 {
			if len(out) > 0 {
				out = append(out, ',')
			}
			out = append(out, s[i:i+3]...)
		}
		s = string(out)
	}
	if neg {
		return "-" + s
	}
	return s
}

func (c Currency) String() string { return string(c) }

// Symbol is what the UI puts next to bare numbers.
func (c Currency) Symbol() string {
	if c == USD {
		return "$"
	}
	return fmt.Sprintf("%s ", string(c))
}

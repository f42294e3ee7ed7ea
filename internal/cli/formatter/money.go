package formatter

import (
	"fmt"
	"math"
	"strings"
)

// Money formats a value as Brazilian currency: R$ 12.345,67. Negative
// values keep the sign ahead of the symbol.
func Money(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	cents := int64(math.Round(v * 100))
	whole := cents / 100
	frac := cents % 100

	return fmt.Sprintf("%sR$ %s,%02d", sign, groupThousands(whole), frac)
}

// Pct formats a percentage with up to one decimal place, dropping a
// trailing ",0".
func Pct(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return strings.ReplaceAll(s, ".", ",") + "%"
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

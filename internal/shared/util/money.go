package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with thousands separators and
// without trailing fractional zeros: 1250.00 -> "1,250", 45.50 -> "45.5".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()

	fracPart = strings.TrimRight(fracPart, "0")
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

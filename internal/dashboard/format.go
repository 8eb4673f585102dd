package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// groupDigits renders n with thousands separators.
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// dollars renders v as a grouped dollar amount with two decimals.
func dollars(v float64) string {
	whole := int(math.Abs(v))
	cents := int(math.Round((math.Abs(v) - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	s := fmt.Sprintf("$%s.%02d", groupDigits(whole), cents)
	if v < 0 {
		return "-" + s
	}
	return s
}

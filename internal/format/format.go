// Package format holds pure display helpers for currency and dates.
package format

import (
	"fmt"
	"time"
)

// Currency renders an amount in minor units (cents) as a US-dollar
// string, e.g. 1500 -> "$15.00", 123456 -> "$1,234.56".
func Currency(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	s := fmt.Sprintf("%d", whole)
	n := len(s)
	out := ""
	rem := n % 3
	if rem == 0 {
		rem = 3
	}
	out = s[:rem]
	for i := rem; i < n; i += 3 {
		out += "," + s[i:i+3]
	}

	if neg {
		return fmt.Sprintf("-$%s.%02d", out, frac)
	}
	return fmt.Sprintf("$%s.%02d", out, frac)
}

// Date renders a calendar date the way the dashboard displays it,
// e.g. "Jan 2, 2026".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

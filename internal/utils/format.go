package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatIDR renders an amount as Indonesian rupiah with dot thousand
// separators and no decimals, e.g. 119000 -> "Rp 119.000". Non-finite
// amounts render as zero.
func FormatIDR(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	neg := amount < 0
	n := int64(math.Round(math.Abs(amount)))

	s := strconv.FormatInt(n, 10)
	var grouped []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, c)
	}

	if neg {
		return fmt.Sprintf("-Rp %s", grouped)
	}
	return fmt.Sprintf("Rp %s", grouped)
}

package presenter

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Currency is the unit every amount is quoted in.
const Currency = "KES"

// FormatAmount renders a money value with exactly two decimals.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatPercent renders an overhead already expressed in percent, e.g. 10 -> "10%".
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(0) + "%"
}

// FormatArea renders an area as entered, without trailing zeros.
func FormatArea(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

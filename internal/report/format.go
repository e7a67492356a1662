package report

import (
	"math"
	"strconv"
	"strings"
)

// FormatEconomy renders a single precision value in the report's float
// notation: the shortest decimal that round-trips, always with a fractional
// digit ("3.0"), scientific notation outside [1e-3, 1e7)
// ("1.0E7"), and "Infinity" or "NaN" for non-finite values.
func FormatEconomy(f float32) string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 32))
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 32), "E")
	n, _ := strconv.Atoi(exp)
	return withFraction(mantissa) + "E" + strconv.Itoa(n)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

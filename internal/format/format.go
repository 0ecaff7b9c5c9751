// Package format holds the number and flag formatting helpers used in console output.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Thousands renders n with comma thousands separators.
func Thousands(n int64) string {
	return printer.Sprintf("%d", n)
}

// Seconds renders v with a thousands-separated integer part and the first two
// characters of its shortest fractional part. The fraction is truncated, not rounded.
func Seconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	front, back, ok := strings.Cut(s, ".")
	if !ok {
		back = "0"
	}
	if len(back) > 2 {
		back = back[:2]
	}
	if n, err := strconv.ParseInt(front, 10, 64); err == nil {
		front = Thousands(n)
	}
	return front + "." + back
}

// TwoDecimals renders v with two significant digits. Fixed notation keeps at
// least one fractional digit and switches to exponent notation once the decimal
// exponent reaches 1 or drops below -4.
func TwoDecimals(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', 1, 64)
	mant, expStr, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expStr)

	if exp < -4 || exp >= 1 {
		mant = strings.TrimSuffix(strings.TrimRight(mant, "0"), ".")
		return mant + "e" + expStr
	}

	fixed := strconv.FormatFloat(v, 'f', 1-exp, 64)
	fixed = strings.TrimRight(fixed, "0")
	if strings.HasSuffix(fixed, ".") {
		fixed += "0"
	}
	return fixed
}

// ConfirmBooleanParam reports whether the upper-cased string form of v contains "T".
func ConfirmBooleanParam(v any) bool {
	return strings.Contains(strings.ToUpper(fmt.Sprint(v)), "T")
}

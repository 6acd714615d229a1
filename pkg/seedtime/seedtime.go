// Package seedtime converts between coach-typed race time strings and their
// canonical fixed-point decimal-seconds representation.
//
// Accepted textual forms: "SS", "SS.", "SS.dd", ".dd", "M:SS.dd" and
// "MMM:SS.dd" — one or more minute digits, exactly two second digits and
// exactly two hundredth digits in the colon form. A bare "." is rejected, as
// is any fractional part that is not exactly two digits long.
package seedtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var seedPattern = regexp.MustCompile(`^(\d+:\d{2}\.\d{2}|\d+(\.\d{2})?|\d+\.|\.\d{2})$`)

// IsSeed reports whether text is a well-formed seed time.
func IsSeed(text string) bool {
	return text != "." && seedPattern.MatchString(text)
}

// Parse converts a seed string to decimal seconds: "1:23.45" parses to 83.45.
// It is defined only for strings IsSeed accepts and returns an error for
// anything else.
func Parse(text string) (decimal.Decimal, error) {
	if !IsSeed(text) {
		return decimal.Zero, fmt.Errorf("seedtime: malformed seed %q", text)
	}

	if !strings.Contains(text, ":") {
		return decimal.NewFromString("0" + strings.TrimSuffix(text, "."))
	}

	minutesPart, rest, _ := strings.Cut(text, ":")
	secondsPart, hundredths, _ := strings.Cut(rest, ".")

	minutes, err := strconv.Atoi(minutesPart)
	if err != nil {
		return decimal.Zero, fmt.Errorf("seedtime: minutes in %q: %w", text, err)
	}
	seconds, err := strconv.Atoi(secondsPart)
	if err != nil {
		return decimal.Zero, fmt.Errorf("seedtime: seconds in %q: %w", text, err)
	}

	return decimal.NewFromString(fmt.Sprintf("%d.%s", 60*minutes+seconds, hundredths))
}

// Format renders decimal seconds back into the display form Parse accepts:
// values under a minute as "SS.dd", longer ones as "M:SS.dd". It is the left
// inverse of Parse for any non-negative value with at most two fractional
// digits.
func Format(seconds decimal.Decimal) string {
	minutes := seconds.IntPart() / 60
	remainder := seconds.Sub(decimal.NewFromInt(minutes * 60))

	if minutes == 0 {
		return remainder.StringFixed(2)
	}

	secText := remainder.StringFixed(2)
	if remainder.LessThan(decimal.NewFromInt(10)) {
		secText = "0" + secText
	}
	return fmt.Sprintf("%d:%s", minutes, secText)
}

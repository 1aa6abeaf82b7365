// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a currency amount for display: grouped digits and
// exactly two decimals, e.g. 1250 -> "$1,250.00". Rounding happens here
// only; price accumulation keeps full precision.
func FormatUSD(amount float64) string {
	return usdPrinter.Sprintf("$%v", number.Decimal(amount, number.Scale(2)))
}

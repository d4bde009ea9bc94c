package model

import (
	"strconv"
	"strings"
)

// FormatAmount renders a value in cents the way the store displays money.
// Example (BRL): 123456 -> "R$ 1.234,56".
func (p StorePreferencesData) FormatAmount(cents int64) string {
	info := p.CurrencyFormatInfo

	sign := ""
	magnitude := uint64(cents)
	if cents < 0 {
		sign = "-"
		magnitude = -magnitude
	}

	integer := strconv.FormatUint(magnitude/100, 10)
	fraction := magnitude % 100

	var number strings.Builder
	number.WriteString(groupDigits(integer, info.CurrencyGroupSeparator, info.CurrencyGroupSize))

	digits := info.CurrencyDecimalDigits
	if digits > 0 {
		decimals := strconv.FormatUint(fraction, 10)
		if len(decimals) < 2 {
			decimals = "0" + decimals
		}
		if digits < 2 {
			decimals = decimals[:digits]
		} else {
			decimals += strings.Repeat("0", digits-2)
		}
		number.WriteString(info.CurrencyDecimalSeparator)
		number.WriteString(decimals)
	}

	if p.CurrencySymbol == "" {
		return sign + number.String()
	}
	if info.StartsWithCurrencySymbol {
		return sign + p.CurrencySymbol + " " + number.String()
	}
	return sign + number.String() + " " + p.CurrencySymbol
}

func groupDigits(integer, separator string, size int) string {
	if size <= 0 || len(integer) <= size {
		return integer
	}

	var result strings.Builder
	head := len(integer) % size
	if head > 0 {
		result.WriteString(integer[:head])
	}
	for i := head; i < len(integer); i += size {
		if result.Len() > 0 {
			result.WriteString(separator)
		}
		result.WriteString(integer[i : i+size])
	}
	return result.String()
}

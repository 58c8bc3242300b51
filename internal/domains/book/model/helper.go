package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatISBN turns a raw 13-character identifier into its hyphen-segmented
// display form: "1234567890123" -> "123-45-678901-2-3". Already formatted
// input passes through unchanged.
func FormatISBN(raw string) (string, error) {
	if strings.Count(raw, "-") == 4 && len(raw) == 17 {
		return raw, nil
	}

	if len(raw) != 13 {
		return "", ErrInvalidISBN
	}

	return raw[0:3] + "-" + raw[3:5] + "-" + raw[5:11] + "-" + raw[11:12] + "-" + raw[12:13], nil
}

// RoundRating normalizes a raw rating mean to two decimal places. Decimal
// arithmetic keeps thirds like 4.333... from leaking float noise onto the
// wire.
func RoundRating(avg float64) float64 {
	return decimal.NewFromFloat(avg).Round(2).InexactFloat64()
}

// DetailCacheKey is the cache key for a book's detail representation.
// Review mutations delete it to keep derived fields fresh.
func DetailCacheKey(bookID int64) string {
	return fmt.Sprintf("book:detail:%d", bookID)
}

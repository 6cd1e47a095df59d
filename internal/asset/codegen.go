package asset

import (
	"fmt"
	"strings"
	"time"
)

// Asset codes are prefix + DDMMYY + zero-padded sequence, e.g. LAP010524001.
const (
	codeDateLayout    = "020106"
	fallbackPrefix    = "XXX"
	maxCodeSequence   = 999
	prefixLengthRunes = 3
)

// CodePrefix derives the code prefix from a category name: the first three
// characters upper-cased, or "XXX" when the category is unknown.
func CodePrefix(categoryName string) string {
	name := strings.TrimSpace(categoryName)
	if name == "" {
		return fallbackPrefix
	}
	runes := []rune(strings.ToUpper(name))
	if len(runes) > prefixLengthRunes {
		runes = runes[:prefixLengthRunes]
	}
	return string(runes)
}

// FormatCode renders the candidate code for a given day and sequence number.
func FormatCode(prefix string, day time.Time, seq int) string {
	return fmt.Sprintf("%s%s%03d", prefix, day.Format(codeDateLayout), seq)
}

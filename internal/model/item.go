package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxItemLength is the longest trimmed item accepted, counted in characters
const MaxItemLength = 30

var (
	// ErrEmptyItem means the value is empty or whitespace-only after trimming
	ErrEmptyItem = errors.New("item is empty")

	// ErrItemTooLong means the trimmed value exceeds MaxItemLength
	ErrItemTooLong = errors.New("item is too long")
)

// NormalizeItem returns the stored form of a raw value
func NormalizeItem(raw string) string {
	return strings.TrimSpace(raw)
}

// ItemKey returns the comparison key used for duplicate detection.
// Two items are duplicates when their keys are equal.
func ItemKey(item string) string {
	return strings.ToLower(NormalizeItem(item))
}

// ItemLength returns the length of an item in characters
func ItemLength(item string) int {
	return utf8.RuneCountInString(item)
}

// ValidateItem checks a normalized item against the empty and length rules
func ValidateItem(item string) error {
	if item == "" {
		return ErrEmptyItem
	}
	if ItemLength(item) > MaxItemLength {
		return ErrItemTooLong
	}
	return nil
}

// TruncateItem cuts raw input down to MaxItemLength characters. Input
// widgets use it to mirror a maxlength attribute.
func TruncateItem(raw string) string {
	if ItemLength(raw) <= MaxItemLength {
		return raw
	}
	runes := []rune(raw)
	return string(runes[:MaxItemLength])
}

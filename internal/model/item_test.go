package model

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeItem(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"Milk", "Milk"},
		{"  Milk  ", "Milk"},
		{"\tBread\n", "Bread"},
		{"   ", ""},
		{"", ""},
		{"two  words", "two  words"},
	}

	for _, test := range tests {
		result := NormalizeItem(test.raw)
		if result != test.expected {
			t.Errorf("NormalizeItem(%q) = %q, expected %q", test.raw, result, test.expected)
		}
	}
}

func TestItemKey(t *testing.T) {
	if ItemKey("Milk") != ItemKey(" milk ") {
		t.Error("Expected keys of 'Milk' and ' milk ' to match")
	}
	if ItemKey("Milk") == ItemKey("Milks") {
		t.Error("Expected keys of 'Milk' and 'Milks' to differ")
	}
}

func TestValidateItem(t *testing.T) {
	tests := []struct {
		item     string
		expected error
	}{
		{"Milk", nil},
		{"", ErrEmptyItem},
		{strings.Repeat("a", MaxItemLength), nil},
		{strings.Repeat("a", MaxItemLength+1), ErrItemTooLong},
		{strings.Repeat("ж", MaxItemLength), nil},
	}

	for _, test := range tests {
		err := ValidateItem(test.item)
		if !errors.Is(err, test.expected) {
			t.Errorf("ValidateItem(%q) = %v, expected %v", test.item, err, test.expected)
		}
	}
}

func TestTruncateItem(t *testing.T) {
	long := strings.Repeat("é", MaxItemLength+5)
	result := TruncateItem(long)
	if ItemLength(result) != MaxItemLength {
		t.Errorf("Expected truncated length %d, got %d", MaxItemLength, ItemLength(result))
	}

	short := "Eggs"
	if TruncateItem(short) != short {
		t.Errorf("Expected %q to be unchanged, got %q", short, TruncateItem(short))
	}
}

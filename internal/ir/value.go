package ir

import (
	"slices"
	"unicode/utf16"
)

// Value is a sealed interface over the shapes a canonical term can take.
// Only String, Int, Bool, Array and Object implement it. There is no null
// and no float: a term either has a component or it does not.
type Value interface {
	irValue()
}

// String is a string leaf.
type String string

func (String) irValue() {}

// Int is an integer leaf. Identifier numbers are encoded as Int.
type Int int64

func (Int) irValue() {}

// Bool is a boolean leaf.
type Bool bool

func (Bool) irValue() {}

// Array is an ordered list of values. Order is significant for hashing.
type Array []Value

func (Array) irValue() {}

// Object maps keys to values. Use SortedKeys for deterministic iteration.
type Object map[string]Value

func (Object) irValue() {}

// SortedKeys returns keys in RFC 8785 order (UTF-16 code units).
// Go's native string order compares UTF-8 bytes, which disagrees for
// characters outside the BMP.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, CompareUTF16)
	return keys
}

// CompareUTF16 orders two strings by UTF-16 code units.
func CompareUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))
	return slices.Compare(a16, b16)
}

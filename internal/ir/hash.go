package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for term keys.
// The version suffix leaves room for a future change of encoding.
const (
	DomainClass          = "ontocore/class/v1"
	DomainObjectProperty = "ontocore/object_property/v1"
	DomainExpression     = "ontocore/class_expression/v1"
	DomainSubClass       = "ontocore/subclass/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte keeps domain and data from running into each other.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Key computes the structural key of a canonical term within a domain.
// Two terms with equal canonical encodings in the same domain share a key.
func Key(domain string, v Value) (string, error) {
	canonical, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("Key(%s): failed to marshal: %w", domain, err)
	}
	return hashWithDomain(domain, canonical), nil
}

// MustKey is like Key but panics on error.
// Use only in tests or when the value is known to be well formed.
func MustKey(domain string, v Value) string {
	k, err := Key(domain, v)
	if err != nil {
		panic(err)
	}
	return k
}

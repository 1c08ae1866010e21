// Package ir provides the canonical value model used to key ontology terms.
//
// Terms are lowered to a small sealed tree of Values, encoded as RFC 8785
// canonical JSON and hashed with domain separation. Structurally equal terms
// always produce the same key; the ontology package confirms every key hit
// with a deep equality check before treating two terms as the same.
//
// This package imports nothing internal.
//
// Key design constraints:
//   - No float and no null values
//   - Object keys ordered by UTF-16 code units
//   - Strings NFC normalised at the encoding boundary
package ir

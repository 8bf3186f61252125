// Package utils provides common utility functions for the schema-engine application.
// It includes the loose type conversions needed when property values come back from
// the entity graph store as decoded JSON (numbers as float64, arrays as []any).
package utils

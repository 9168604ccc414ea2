// Package blockid generates fresh identifiers for block tree nodes.
//
// Identifiers carry no semantic meaning to parsing or serialization;
// they only need to be unique within a tree so that editor
// reconciliation can tell siblings apart.
package blockid

import "github.com/google/uuid"

// New returns a fresh identifier. Every call returns a distinct value.
func New() string {
	return uuid.NewString()
}

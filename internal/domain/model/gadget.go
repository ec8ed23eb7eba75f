// Package model contains domain entities passed between layers.
package model

import "time"

// Category classifies a gadget. The set is closed.
type Category string

// Gadget categories.
const (
	CategoryKeyboard   Category = "keyboard"
	CategoryAutomation Category = "automation"
	CategorySnippet    Category = "snippet"
	CategoryWorkflow   Category = "workflow"
	CategoryMacro      Category = "macro"
)

// Categories returns all categories in a fixed order.
func Categories() []Category {
	return []Category{
		CategoryKeyboard,
		CategoryAutomation,
		CategorySnippet,
		CategoryWorkflow,
		CategoryMacro,
	}
}

// Valid reports whether c is one of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryKeyboard, CategoryAutomation, CategorySnippet, CategoryWorkflow, CategoryMacro:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// Gadget is a registered artifact. Once issued it is immutable except for
// Active and ClaimCount.
type Gadget struct {
	ID           int64
	Owner        string
	Hash         string // hex SHA-256 over seed | payload | id
	Category     Category
	RegisteredAt time.Time
	Active       bool
	ClaimCount   int64
}

// Shortcut records a user claiming a gadget. Immutable once created.
type Shortcut struct {
	ID         int64
	GadgetID   int64
	Claimer    string
	ClaimedAt  time.Time
	ScoreAdded int64
}

// Package catalog lists the interactive hooks this module ships.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned by Lookup for an unknown id.
var ErrNotFound = errors.New("hook not found")

// Item describes one hook.
type Item struct {
	// ID is the kebab-case identifier used on the command line.
	ID          string
	Name        string
	Description string
	// Usage is a short walkthrough of the demo.
	Usage string
}

var items = []Item{
	{
		ID:          "mouse-away",
		Name:        "MouseAway",
		Description: "Repels an element away from the mouse pointer.",
		Usage: "Try to click Checkout. It will try to avoid you. " +
			"The button springs back once the pointer leaves its bubble and never leaves its container.",
	},
}

// All returns every hook sorted by id.
func All() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup finds a hook by id.
func Lookup(id string) (Item, error) {
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

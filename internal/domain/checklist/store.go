package checklist

import (
	"math"
	"time"

	"github.com/turnos-app/turnos-backend-go/internal/pkg/validator"
)

// Store maps a weekID (Monday day key) to that week's items. All operations
// return a new store with only the touched week's list replaced.
type Store map[string][]Item

func (s Store) cloneWith(weekID string, items []Item) Store {
	out := make(Store, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[weekID] = items
	return out
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// EnsureWeek seeds the default items the first time a week is seen. A week
// that already has a list, even an empty one, is left alone.
func EnsureWeek(s Store, weekID string) Store {
	if _, ok := s[weekID]; ok {
		return s
	}
	return s.cloneWith(weekID, DefaultItems())
}

// Toggle flips the checked flag of one item. Unknown ids are a no-op.
func Toggle(s Store, weekID string, itemID int64) Store {
	items := cloneItems(s[weekID])
	for i := range items {
		if items[i].ID == itemID {
			items[i].Checked = !items[i].Checked
			break
		}
	}
	return s.cloneWith(weekID, items)
}

// Add appends a new unchecked item with a fresh time-derived id. Blank labels
// are rejected without mutation.
func Add(s Store, weekID, label string) (Store, Item, error) {
	if validator.IsEmpty(label) {
		return s, Item{}, validator.ValidationErrors{{
			Field:   "label",
			Message: "label is required",
		}}
	}

	items := cloneItems(s[weekID])
	id := time.Now().UnixMilli()
	for hasID(items, id) {
		id++
	}

	item := Item{ID: id, Label: label}
	return s.cloneWith(weekID, append(items, item)), item, nil
}

func hasID(items []Item, id int64) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Remove deletes one item. Unknown ids are a no-op.
func Remove(s Store, weekID string, itemID int64) Store {
	items := s[weekID]
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return s.cloneWith(weekID, out)
}

// Completion is the checked percentage, rounded to the nearest integer. An
// empty list is 0, not a division error.
func Completion(items []Item) int {
	if len(items) == 0 {
		return 0
	}
	checked := 0
	for _, it := range items {
		if it.Checked {
			checked++
		}
	}
	return int(math.Round(float64(checked) / float64(len(items)) * 100))
}

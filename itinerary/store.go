package itinerary

import (
	"fmt"
	"sort"
	"sync"
	"wandervoice/models"
)

// Item is one catalog entity scheduled on a day of the working trip. The
// entity payload is owned by the catalog; the store never inspects it beyond
// name/description/id.
type Item struct {
	ID          string            `json:"id"`
	SourceType  models.SourceType `json:"source_type"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	SourceData  map[string]any    `json:"source_data,omitempty"`
	DayNumber   int               `json:"day_number"`
	Order       int               `json:"order"`
}

// Store holds the working set of items a user is assembling into a
// multi-day trip, independent of persistence. Items on the same day list in
// ascending order; order values are only comparable within a day.
type Store struct {
	mu    sync.Mutex
	items []*Item
	seq   int
}

func NewStore() *Store {
	return &Store{}
}

// AddItem schedules an entity on dayNumber, after everything already there.
// The entity payload is trusted as-is.
func (s *Store) AddItem(entity map[string]any, sourceType models.SourceType, dayNumber int) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dayNumber < 1 {
		dayNumber = 1
	}
	s.seq++

	item := &Item{
		ID:          fmt.Sprintf("%s-%v-%d", sourceType, entity["id"], s.seq),
		SourceType:  sourceType,
		Name:        stringField(entity, "name"),
		Description: stringField(entity, "description"),
		SourceData:  entity,
		DayNumber:   dayNumber,
		Order:       s.seq,
	}
	s.items = append(s.items, item)
	return *item
}

// RemoveItem deletes the item if present; absent ids are a no-op.
func (s *Store) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// MoveItemToDay reschedules the item to the end of newDay. Moving within the
// same day resets the item to that day's end. No-op for unknown ids.
func (s *Store) MoveItemToDay(itemID string, newDay int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newDay < 1 {
		newDay = 1
	}
	for _, it := range s.items {
		if it.ID == itemID {
			s.seq++
			it.DayNumber = newDay
			it.Order = s.seq
			return
		}
	}
}

// ReorderItem places the item at newIndex within day's sequence (pulling it
// out of its current day if different) and renumbers that day's items to
// contiguous 0..k-1. Other days are untouched. Applying the same reorder
// twice yields the same sequence.
func (s *Store) ReorderItem(itemID string, day, newIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if day < 1 {
		day = 1
	}

	var moved *Item
	for _, it := range s.items {
		if it.ID == itemID {
			moved = it
			break
		}
	}
	if moved == nil {
		return
	}
	moved.DayNumber = day

	dayItems := make([]*Item, 0)
	for _, it := range s.items {
		if it.DayNumber == day && it != moved {
			dayItems = append(dayItems, it)
		}
	}
	sort.SliceStable(dayItems, func(i, j int) bool { return dayItems[i].Order < dayItems[j].Order })

	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(dayItems) {
		newIndex = len(dayItems)
	}
	dayItems = append(dayItems[:newIndex], append([]*Item{moved}, dayItems[newIndex:]...)...)

	for i, it := range dayItems {
		it.Order = i
	}
}

// GetItemsByDay returns the day's items sorted ascending by order. Empty
// slice when nothing is scheduled there.
func (s *Store) GetItemsByDay(dayNumber int) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, 0)
	for _, it := range s.items {
		if it.DayNumber == dayNumber {
			out = append(out, *it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Items returns a snapshot of the whole store, sorted by day then order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DayNumber != out[j].DayNumber {
			return out[i].DayNumber < out[j].DayNumber
		}
		return out[i].Order < out[j].Order
	})
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Clear empties the store entirely.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func stringField(entity map[string]any, key string) string {
	if v, ok := entity[key].(string); ok {
		return v
	}
	return ""
}

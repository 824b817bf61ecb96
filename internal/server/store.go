package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/google/uuid"
)

var (
	ErrSlotNotFound  = errors.New("slot not found")
	ErrDuplicateSlot = errors.New("slot number already used at location")
)

// SlotStore keeps slots in memory for the development backend.
type SlotStore struct {
	mu    sync.RWMutex
	slots map[string]slot.Slot
	order []string
	// taken indexes slot IDs by location and number
	taken map[string]string
}

// NewSlotStore creates an empty store.
func NewSlotStore() *SlotStore {
	return &SlotStore{
		slots: make(map[string]slot.Slot),
		taken: make(map[string]string),
	}
}

func placeKey(location, number string) string {
	return strings.ToLower(strings.TrimSpace(location)) + "\x00" + strings.ToLower(strings.TrimSpace(number))
}

func toSlot(id string, d slot.Draft) (slot.Slot, error) {
	fee, err := slot.ParseFee(d.FeePerHour)
	if err != nil {
		return slot.Slot{}, fmt.Errorf("slot '%s': %w", d.Number, err)
	}
	return slot.Slot{
		ID:          id,
		Number:      strings.TrimSpace(d.Number),
		Size:        d.Size,
		VehicleType: d.VehicleType,
		Location:    strings.TrimSpace(d.Location),
		FeePerHour:  fee,
	}, nil
}

func duplicateError(d slot.Draft) error {
	return fmt.Errorf("%w: %s", ErrDuplicateSlot, fmt.Sprintf(DuplicateSlotMessageFmt, d.Number, d.Location))
}

func notFoundError(id string) error {
	return fmt.Errorf("%w: %s", ErrSlotNotFound, fmt.Sprintf(SlotNotFoundMessageFmt, id))
}

// Create stores one validated draft under a fresh ID.
func (s *SlotStore) Create(d slot.Draft) (slot.Slot, error) {
	created, err := toSlot(uuid.New().String(), d)
	if err != nil {
		return slot.Slot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := placeKey(created.Location, created.Number)
	if _, exists := s.taken[key]; exists {
		return slot.Slot{}, duplicateError(d)
	}
	s.insertLocked(key, created)
	return created, nil
}

// CreateMany stores every draft or none of them. When anything conflicts the
// returned RowErrors name each offending row and nothing is stored.
func (s *SlotStore) CreateMany(drafts []slot.Draft) ([]slot.Slot, []RowError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]slot.Slot, 0, len(drafts))
	keys := make([]string, 0, len(drafts))
	seen := make(map[string]int, len(drafts))
	var rowErrs []RowError

	for i, d := range drafts {
		sl, err := toSlot(uuid.New().String(), d)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i, Number: d.Number, Errors: slot.FieldErrors{slot.FieldFeePerHour: slot.MessageFeeInvalid}})
			continue
		}
		key := placeKey(sl.Location, sl.Number)
		_, stored := s.taken[key]
		if first, dup := seen[key]; stored || dup {
			msg := fmt.Sprintf(DuplicateSlotMessageFmt, d.Number, d.Location)
			if dup {
				msg = fmt.Sprintf("%s (row %d)", msg, first)
			}
			rowErrs = append(rowErrs, RowError{Row: i, Number: d.Number, Errors: slot.FieldErrors{slot.FieldNumber: msg}})
			continue
		}
		seen[key] = i
		keys = append(keys, key)
		created = append(created, sl)
	}

	if len(rowErrs) > 0 {
		return nil, rowErrs
	}
	for i, sl := range created {
		s.insertLocked(keys[i], sl)
	}
	return created, nil
}

func (s *SlotStore) insertLocked(key string, sl slot.Slot) {
	s.slots[sl.ID] = sl
	s.taken[key] = sl.ID
	s.order = append(s.order, sl.ID)
}

// Get returns the slot with the given ID.
func (s *SlotStore) Get(id string) (slot.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, exists := s.slots[id]
	if !exists {
		return slot.Slot{}, notFoundError(id)
	}
	return sl, nil
}

// List returns every slot in creation order.
func (s *SlotStore) List() []slot.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]slot.Slot, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.slots[id])
	}
	return out
}

// Update replaces every field of an existing slot. Moving a slot onto a
// number already used at the target location fails with ErrDuplicateSlot.
func (s *SlotStore) Update(id string, d slot.Draft) (slot.Slot, error) {
	updated, err := toSlot(id, d)
	if err != nil {
		return slot.Slot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.slots[id]
	if !exists {
		return slot.Slot{}, notFoundError(id)
	}
	oldKey := placeKey(current.Location, current.Number)
	newKey := placeKey(updated.Location, updated.Number)
	if owner, taken := s.taken[newKey]; taken && owner != id {
		return slot.Slot{}, duplicateError(d)
	}

	delete(s.taken, oldKey)
	s.taken[newKey] = id
	s.slots[id] = updated
	return updated, nil
}

// Len reports how many slots are stored.
func (s *SlotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EditSlotWorkflow accumulates edits to an existing slot. It performs no
// validation and no network calls; onSave receives the merged record.
type EditSlotWorkflow struct {
	onSave  func(slot.Slot)
	onClose func()

	mu       sync.Mutex
	original *slot.Slot
	patch    slot.Patch
}

// NewEditSlotWorkflow creates an empty edit workflow; call Load before editing.
func NewEditSlotWorkflow(onSave func(slot.Slot), onClose func()) *EditSlotWorkflow {
	return &EditSlotWorkflow{onSave: onSave, onClose: onClose}
}

// Load sets the record being edited. Pending edits are discarded when the
// record's identity changes; reloading the same ID keeps them, even when the
// record is a fresh copy. A nil record empties the workflow.
func (w *EditSlotWorkflow) Load(record *slot.Slot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if record == nil {
		w.original = nil
		w.patch = slot.Patch{}
		return
	}
	if w.original == nil || w.original.ID != record.ID {
		w.patch = slot.Patch{}
	}
	rec := *record
	w.original = &rec
}

// Current returns the record with pending edits applied. ok is false when
// nothing is loaded.
func (w *EditSlotWorkflow) Current() (current slot.Slot, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.original == nil {
		return slot.Slot{}, false
	}
	return w.patch.Apply(*w.original), true
}

// UpdateField records one edit. The fee is parsed to a number before it is
// stored; every other field is kept as given.
func (w *EditSlotWorkflow) UpdateField(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch name {
	case slot.FieldNumber:
		w.patch.Number = &value
	case slot.FieldSize:
		size := slot.Size(value)
		w.patch.Size = &size
	case slot.FieldVehicleType:
		vt := slot.VehicleType(value)
		w.patch.VehicleType = &vt
	case slot.FieldLocation:
		w.patch.Location = &value
	case slot.FieldFeePerHour:
		fee, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("update fee '%s': %w", value, ErrInvalidFee)
		}
		w.patch.FeePerHour = &fee
	default:
		return fmt.Errorf("update field '%s': %w", name, ErrUnknownField)
	}
	return nil
}

// Save hands the merged record to onSave and closes the dialog. It reports
// false when no record is loaded.
func (w *EditSlotWorkflow) Save() bool {
	merged, ok := w.Current()
	if !ok {
		return false
	}

	utils.WithComponent("edit_slot").Debug("Saving slot edits",
		zap.String(utils.FieldSlotID, merged.ID),
		zap.String(utils.FieldSlotNumber, merged.Number))

	if w.onSave != nil {
		w.onSave(merged)
	}
	w.Close()
	return true
}

// Close dismisses the dialog without saving.
func (w *EditSlotWorkflow) Close() {
	if w.onClose != nil {
		w.onClose()
	}
}

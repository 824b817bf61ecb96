package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

const selectPlaceholder = "-- Select --"

var fieldTitles = map[string]string{
	slot.FieldNumber:      "Slot Number",
	slot.FieldSize:        "Slot Size",
	slot.FieldVehicleType: "Vehicle Type",
	slot.FieldLocation:    "Location",
	slot.FieldFeePerHour:  "Fee Per Hour",
}

// selectOptions lists values behind an empty placeholder entry.
func selectOptions[T ~string](values []T) []huh.Option[T] {
	opts := make([]huh.Option[T], 0, len(values)+1)
	opts = append(opts, huh.NewOption(selectPlaceholder, T("")))
	for _, v := range values {
		opts = append(opts, huh.NewOption(string(v), v))
	}
	return opts
}

// fieldHint is the description shown under an input: the field's error if
// it has one.
func (d *Dialogs) fieldHint(errs slot.FieldErrors, name string) string {
	if msg, ok := errs[name]; ok {
		return d.styles.Error.Render(msg)
	}
	return ""
}

// draftFields binds the inputs of one slot form to draft.
func (d *Dialogs) draftFields(draft *slot.Draft, errs slot.FieldErrors) []huh.Field {
	return []huh.Field{
		huh.NewInput().
			Title(fieldTitles[slot.FieldNumber]).
			Description(d.fieldHint(errs, slot.FieldNumber)).
			Value(&draft.Number),
		huh.NewSelect[slot.Size]().
			Title(fieldTitles[slot.FieldSize]).
			Description(d.fieldHint(errs, slot.FieldSize)).
			Options(selectOptions(slot.Sizes())...).
			Value(&draft.Size),
		huh.NewSelect[slot.VehicleType]().
			Title(fieldTitles[slot.FieldVehicleType]).
			Description(d.fieldHint(errs, slot.FieldVehicleType)).
			Options(selectOptions(slot.VehicleTypes())...).
			Value(&draft.VehicleType),
		huh.NewInput().
			Title(fieldTitles[slot.FieldLocation]).
			Description(d.fieldHint(errs, slot.FieldLocation)).
			Value(&draft.Location),
		huh.NewInput().
			Title(fieldTitles[slot.FieldFeePerHour]).
			Description(d.fieldHint(errs, slot.FieldFeePerHour)).
			Placeholder("0.00").
			Value(&draft.FeePerHour),
	}
}

// changedFields lists the fields whose text differs between two drafts, in
// form order.
func changedFields(before, after slot.Draft) []string {
	var changed []string
	for _, name := range slot.Fields() {
		if before.Value(name) != after.Value(name) {
			changed = append(changed, name)
		}
	}
	return changed
}

// pushDraft copies the changed fields of after into a workflow through update.
func pushDraft(update func(name, value string) error, before, after slot.Draft) error {
	for _, name := range changedFields(before, after) {
		if err := update(name, after.Value(name)); err != nil {
			return fmt.Errorf("update %s: %w", name, err)
		}
	}
	return nil
}

var errFeeNotNumber = errors.New("fee must be a number")

func validateFee(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return errFeeNotNumber
	}
	return nil
}

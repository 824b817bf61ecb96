package tui

import (
	"errors"
	"testing"

	"github.com/anmicius0/parking-slot-manager/internal/config"
	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOptions(t *testing.T) {
	opts := selectOptions(slot.Sizes())

	require.Len(t, opts, 4)
	assert.Equal(t, selectPlaceholder, opts[0].Key)
	assert.Equal(t, slot.Size(""), opts[0].Value)
	assert.Equal(t, slot.SizeSmall, opts[1].Value)
	assert.Equal(t, slot.SizeLarge, opts[3].Value)
}

func TestFieldHint(t *testing.T) {
	d := NewDialogs(NewStyles(config.DefaultTheme()), &stubOut{})
	errs := slot.FieldErrors{slot.FieldLocation: slot.MessageLocationRequired}

	assert.Contains(t, d.fieldHint(errs, slot.FieldLocation), slot.MessageLocationRequired)
	assert.Empty(t, d.fieldHint(errs, slot.FieldNumber))
	assert.Empty(t, d.fieldHint(nil, slot.FieldNumber))
}

func TestPushDraft(t *testing.T) {
	before := slot.Draft{Number: "A1", Size: slot.SizeMedium, VehicleType: slot.VehicleCar, Location: "L1", FeePerHour: "5"}
	after := before
	after.FeePerHour = "7"
	after.Location = "L2"

	var got []string
	err := pushDraft(func(name, value string) error {
		got = append(got, name+"="+value)
		return nil
	}, before, after)

	require.NoError(t, err)
	assert.Equal(t, []string{"location=L2", "feePerHour=7"}, got)

	boom := errors.New("boom")
	err = pushDraft(func(string, string) error { return boom }, before, after)
	assert.ErrorIs(t, err, boom)

	assert.Empty(t, changedFields(before, before))
}

func TestValidateFee(t *testing.T) {
	assert.NoError(t, validateFee("7"))
	assert.NoError(t, validateFee(" 2.50 "))
	assert.ErrorIs(t, validateFee("abc"), errFeeNotNumber)
	assert.ErrorIs(t, validateFee(""), errFeeNotNumber)
}

func TestBatchActions(t *testing.T) {
	values := func(rows int) []batchAction {
		var out []batchAction
		for _, o := range batchActions(rows) {
			out = append(out, o.Value)
		}
		return out
	}

	assert.NotContains(t, values(1), batchRemove)
	assert.Contains(t, values(2), batchRemove)
	assert.Equal(t, batchSubmit, values(1)[0])
}

func TestRowHelpers(t *testing.T) {
	assert.Equal(t, "Slot 1", rowLabel(0, slot.NewDraft()))
	assert.Equal(t, "Slot 2 · A2 @ L1", rowLabel(1, slot.Draft{Number: "A2", Location: "L1"}))

	assert.Equal(t, []int{0, 1, 2}, allRows(3))
	assert.Equal(t, []int{1}, rowsWithErrors([]slot.FieldErrors{{}, {slot.FieldNumber: "x"}}))
	assert.Nil(t, rowsWithErrors([]slot.FieldErrors{{}}))
}

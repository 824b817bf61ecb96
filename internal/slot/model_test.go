package slot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewDraft(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, SizeMedium, d.Size)
	assert.Equal(t, VehicleCar, d.VehicleType)
	assert.Empty(t, d.Number)
	assert.Empty(t, d.Location)
	assert.Empty(t, d.FeePerHour)
}

func TestDraftWith(t *testing.T) {
	d := NewDraft()

	updated, ok := d.With(FieldLocation, "Basement A")
	assert.True(t, ok)
	assert.Equal(t, "Basement A", updated.Location)
	assert.Empty(t, d.Location, "original draft must not change")

	updated, ok = updated.With(FieldSize, string(SizeLarge))
	assert.True(t, ok)
	assert.Equal(t, SizeLarge, updated.Size)

	_, ok = d.With("colour", "red")
	assert.False(t, ok)
}

func TestPatchApply(t *testing.T) {
	original := Slot{
		ID:          "slot-1",
		Number:      "A1",
		Size:        SizeMedium,
		VehicleType: VehicleCar,
		Location:    "L1",
		FeePerHour:  decimal.NewFromInt(5),
	}

	t.Run("Empty patch passes everything through", func(t *testing.T) {
		var p Patch
		assert.True(t, p.IsEmpty())
		assert.Equal(t, original, p.Apply(original))
	})

	t.Run("Edited fields override", func(t *testing.T) {
		fee := decimal.NewFromInt(7)
		loc := "L2"
		p := Patch{FeePerHour: &fee, Location: &loc}
		merged := p.Apply(original)

		assert.Equal(t, "A1", merged.Number)
		assert.Equal(t, "L2", merged.Location)
		assert.True(t, decimal.NewFromInt(7).Equal(merged.FeePerHour))
		assert.Equal(t, "L1", original.Location)
	})
}

func TestIsField(t *testing.T) {
	for _, f := range Fields() {
		assert.True(t, IsField(f), f)
	}
	assert.False(t, IsField("id"))
}

func TestEnumValid(t *testing.T) {
	for _, s := range Sizes() {
		assert.True(t, s.Valid(), s)
	}
	for _, v := range VehicleTypes() {
		assert.True(t, v.Valid(), v)
	}
	assert.False(t, Size("HUGE").Valid())
	assert.False(t, Size("").Valid())
	assert.False(t, VehicleType("BUS").Valid())
}

func TestDraftValueRoundTrip(t *testing.T) {
	d := Draft{Number: "A1", Size: SizeLarge, VehicleType: VehicleTruck, Location: "Roof", FeePerHour: "4.5"}

	rebuilt := Draft{}
	for _, name := range Fields() {
		var ok bool
		rebuilt, ok = rebuilt.With(name, d.Value(name))
		assert.True(t, ok, name)
	}
	assert.Equal(t, d, rebuilt)
	assert.Empty(t, d.Value("colour"))
}

func TestDraftOf(t *testing.T) {
	s := Slot{ID: "x", Number: "A1", Size: SizeSmall, VehicleType: VehicleMotorcycle, Location: "L1", FeePerHour: decimal.RequireFromString("2.50")}

	d := DraftOf(s)

	assert.Equal(t, Draft{Number: "A1", Size: SizeSmall, VehicleType: VehicleMotorcycle, Location: "L1", FeePerHour: "2.5"}, d)
}

// Package slot defines the parking slot records handled by the dialogs and
// the validation rules applied to them before submission.
package slot

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Size is the physical size class of a parking slot.
type Size string

const (
	SizeSmall  Size = "SMALL"
	SizeMedium Size = "MEDIUM"
	SizeLarge  Size = "LARGE"
)

// DefaultSize is preselected when a creation dialog opens.
const DefaultSize = SizeMedium

// Sizes lists every size in display order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Valid reports whether s is one of Sizes.
func (s Size) Valid() bool {
	return slices.Contains(Sizes(), s)
}

// VehicleType is the kind of vehicle a slot accepts.
type VehicleType string

const (
	VehicleCar        VehicleType = "CAR"
	VehicleMotorcycle VehicleType = "MOTORCYCLE"
	VehicleTruck      VehicleType = "TRUCK"
)

// DefaultVehicleType is preselected when a creation dialog opens.
const DefaultVehicleType = VehicleCar

// VehicleTypes lists every vehicle type in display order.
func VehicleTypes() []VehicleType {
	return []VehicleType{VehicleCar, VehicleMotorcycle, VehicleTruck}
}

// Valid reports whether v is one of VehicleTypes.
func (v VehicleType) Valid() bool {
	return slices.Contains(VehicleTypes(), v)
}

// Field names as they appear in FieldErrors and on the wire.
const (
	FieldNumber      = "number"
	FieldSize        = "size"
	FieldVehicleType = "vehicleType"
	FieldLocation    = "location"
	FieldFeePerHour  = "feePerHour"
)

// Fields lists the editable fields in form order.
func Fields() []string {
	return []string{FieldNumber, FieldSize, FieldVehicleType, FieldLocation, FieldFeePerHour}
}

// IsField reports whether name is one of the editable slot fields.
func IsField(name string) bool {
	switch name {
	case FieldNumber, FieldSize, FieldVehicleType, FieldLocation, FieldFeePerHour:
		return true
	}
	return false
}

// Draft is a slot being entered in a form. FeePerHour keeps the raw input
// text; it is only interpreted by validation and by the backend.
type Draft struct {
	Number      string      `json:"number" validate:"required"`
	Size        Size        `json:"size" validate:"required"`
	VehicleType VehicleType `json:"vehicleType" validate:"required"`
	Location    string      `json:"location" validate:"required"`
	FeePerHour  string      `json:"feePerHour" validate:"required"`
}

// NewDraft returns a draft holding the form defaults.
func NewDraft() Draft {
	return Draft{
		Size:        DefaultSize,
		VehicleType: DefaultVehicleType,
	}
}

// With returns a copy of d with one field replaced. ok is false for an
// unknown field name, in which case d is returned unchanged.
func (d Draft) With(name, value string) (Draft, bool) {
	switch name {
	case FieldNumber:
		d.Number = value
	case FieldSize:
		d.Size = Size(value)
	case FieldVehicleType:
		d.VehicleType = VehicleType(value)
	case FieldLocation:
		d.Location = value
	case FieldFeePerHour:
		d.FeePerHour = value
	default:
		return d, false
	}
	return d, true
}

// Value returns the text of the named field, or "" for an unknown name.
func (d Draft) Value(name string) string {
	switch name {
	case FieldNumber:
		return d.Number
	case FieldSize:
		return string(d.Size)
	case FieldVehicleType:
		return string(d.VehicleType)
	case FieldLocation:
		return d.Location
	case FieldFeePerHour:
		return d.FeePerHour
	}
	return ""
}

// DraftOf returns the form view of a stored slot.
func DraftOf(s Slot) Draft {
	return Draft{
		Number:      s.Number,
		Size:        s.Size,
		VehicleType: s.VehicleType,
		Location:    s.Location,
		FeePerHour:  s.FeePerHour.String(),
	}
}

// Slot is a persisted parking slot as returned by the backend.
type Slot struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Size        Size            `json:"size"`
	VehicleType VehicleType     `json:"vehicleType"`
	Location    string          `json:"location"`
	FeePerHour  decimal.Decimal `json:"feePerHour"`
}

// Patch holds the fields changed while editing a slot; nil means unchanged.
type Patch struct {
	Number      *string
	Size        *Size
	VehicleType *VehicleType
	Location    *string
	FeePerHour  *decimal.Decimal
}

// IsEmpty reports whether no field has been edited.
func (p Patch) IsEmpty() bool {
	return p.Number == nil && p.Size == nil && p.VehicleType == nil && p.Location == nil && p.FeePerHour == nil
}

// Apply returns a copy of s with the edited fields overriding the originals.
func (p Patch) Apply(s Slot) Slot {
	if p.Number != nil {
		s.Number = *p.Number
	}
	if p.Size != nil {
		s.Size = *p.Size
	}
	if p.VehicleType != nil {
		s.VehicleType = *p.VehicleType
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.FeePerHour != nil {
		s.FeePerHour = *p.FeePerHour
	}
	return s
}

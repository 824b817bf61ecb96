package client

import "github.com/anmicius0/parking-slot-manager/internal/slot"

// bulkCreateRequest is the body of POST /slots/bulk.
type bulkCreateRequest struct {
	Slots []slot.Draft `json:"slots"`
}

// bulkCreateResponse is returned by POST /slots/bulk.
type bulkCreateResponse struct {
	Created []slot.Slot `json:"created"`
	Count   int         `json:"count"`
}

// slotRequest is the body of PUT /slots/:id.
type slotRequest struct {
	Number      string           `json:"number"`
	Size        slot.Size        `json:"size"`
	VehicleType slot.VehicleType `json:"vehicleType"`
	Location    string           `json:"location"`
	FeePerHour  string           `json:"feePerHour"`
}

func toSlotRequest(s slot.Slot) slotRequest {
	return slotRequest{
		Number:      s.Number,
		Size:        s.Size,
		VehicleType: s.VehicleType,
		Location:    s.Location,
		FeePerHour:  s.FeePerHour.String(),
	}
}

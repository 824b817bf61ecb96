package server

import "github.com/anmicius0/parking-slot-manager/internal/slot"

// RowError holds every problem found with one slot of a request.
type RowError struct {
	Row    int
	Number string
	Errors slot.FieldErrors
}

// bulkCreateRequest holds the slots of a POST /slots/bulk call.
type bulkCreateRequest struct {
	Slots []slot.Draft `json:"slots" binding:"required"`
}

// bulkCreateResponse is returned once every slot of a batch is stored.
type bulkCreateResponse struct {
	Created []slot.Slot `json:"created"`
	Count   int         `json:"count"`
}

package client

import (
	"context"

	"github.com/anmicius0/parking-slot-manager/internal/slot"
)

// SlotClient defines the operations we perform against the slots API.
// Use NewSlotClient to obtain an implementation that satisfies this interface.
type SlotClient interface {
	CreateSlot(ctx context.Context, draft slot.Draft) (*slot.Slot, error)
	CreateSlots(ctx context.Context, drafts []slot.Draft) ([]slot.Slot, error)
	ListSlots(ctx context.Context) ([]slot.Slot, error)
	GetSlot(ctx context.Context, id string) (*slot.Slot, error)
	UpdateSlot(ctx context.Context, s slot.Slot) (*slot.Slot, error)
}

// Backend is the collaborator the creation dialogs submit through. Both
// methods report completion through the callbacks on every path, success or
// failure, so the caller can re-enable its controls.
type Backend interface {
	CreateSlot(ctx context.Context, draft slot.Draft, onLoadingChange func(bool)) error
	CreateSlots(ctx context.Context, req BatchRequest) error
}

// BatchRequest carries a multi-slot submission and its completion callbacks.
type BatchRequest struct {
	Drafts          []slot.Draft
	OnLoadingChange func(bool)
	OnDone          func()
}

// Notifier surfaces the outcome of a backend call to the user.
type Notifier interface {
	Success(message string)
	Failure(message string, err error)
}

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"go.uber.org/zap"
)

// slotBackend adapts a SlotClient to the callback contract the dialogs use.
type slotBackend struct {
	slots    SlotClient
	notifier Notifier
}

// NewSlotBackend wraps slots so every call clears the loading state and
// reports its outcome through notifier. A nil notifier logs instead.
func NewSlotBackend(slots SlotClient, notifier Notifier) Backend {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &slotBackend{slots: slots, notifier: notifier}
}

func (b *slotBackend) CreateSlot(ctx context.Context, draft slot.Draft, onLoadingChange func(bool)) error {
	defer setLoading(onLoadingChange, false)

	created, err := b.slots.CreateSlot(ctx, draft)
	if err != nil {
		b.notifier.Failure(failureMessage("Failed to create slot", err), err)
		return err
	}
	b.notifier.Success(fmt.Sprintf("Slot %s created", created.Number))
	return nil
}

func (b *slotBackend) CreateSlots(ctx context.Context, req BatchRequest) error {
	defer func() {
		setLoading(req.OnLoadingChange, false)
		if req.OnDone != nil {
			req.OnDone()
		}
	}()

	created, err := b.slots.CreateSlots(ctx, req.Drafts)
	if err != nil {
		b.notifier.Failure(failureMessage("Failed to create slots", err), err)
		return err
	}
	b.notifier.Success(fmt.Sprintf("%d slots created", len(created)))
	return nil
}

func setLoading(fn func(bool), v bool) {
	if fn != nil {
		fn(v)
	}
}

// failureMessage prefers the server's message for client errors.
func failureMessage(prefix string, err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode < http.StatusInternalServerError && httpErr.Body != "" {
		return fmt.Sprintf("%s: %s", prefix, httpErr.Body)
	}
	return prefix
}

// LogNotifier reports outcomes to the application log.
type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	utils.WithComponent("notifier").Info(message)
}

func (LogNotifier) Failure(message string, err error) {
	utils.WithComponent("notifier").Error(message, zap.Error(err))
}

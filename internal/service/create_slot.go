package service

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/anmicius0/parking-slot-manager/internal/client"
	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"go.uber.org/zap"
)

// CreateSlotWorkflow holds the state of the single-slot creation dialog.
type CreateSlotWorkflow struct {
	backend client.Backend
	loading *LoadingFlag
	onClose func()
	life    *lifetime

	mu     sync.Mutex
	draft  slot.Draft
	errors slot.FieldErrors
}

// NewCreateSlotWorkflow creates the workflow with a default draft. onClose is
// called whenever the dialog should be dismissed and may be nil.
func NewCreateSlotWorkflow(backend client.Backend, loading *LoadingFlag, onClose func()) *CreateSlotWorkflow {
	return &CreateSlotWorkflow{
		backend: backend,
		loading: loading,
		onClose: onClose,
		life:    newLifetime(),
		draft:   slot.NewDraft(),
		errors:  slot.FieldErrors{},
	}
}

// Draft returns the current form values.
func (w *CreateSlotWorkflow) Draft() slot.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Errors returns the messages from the last submit attempt.
func (w *CreateSlotWorkflow) Errors() slot.FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return maps.Clone(w.errors)
}

// UpdateField replaces one field of the draft without validating it.
func (w *CreateSlotWorkflow) UpdateField(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	updated, ok := w.draft.With(name, value)
	if !ok {
		return fmt.Errorf("update field '%s': %w", name, ErrUnknownField)
	}
	w.draft = updated
	return nil
}

// Submit validates the draft and, when it is valid, sends it to the backend.
// Validation failures are stored for display and reported as
// ErrValidationFailed without touching the loading flag. On success the
// returned task resets the form and closes the dialog when the call finishes.
func (w *CreateSlotWorkflow) Submit(ctx context.Context) (*Task, error) {
	log := utils.WithComponent("create_slot")

	w.mu.Lock()
	if !w.life.alive() {
		w.mu.Unlock()
		return nil, ErrWorkflowClosed
	}
	errs := slot.Validate(w.draft, slot.FeeStrict)
	w.errors = errs
	if !errs.Valid() {
		w.mu.Unlock()
		log.Debug("Submit blocked by validation", zap.Int(utils.FieldErrorCount, len(errs)))
		return nil, ErrValidationFailed
	}
	if !w.loading.TryAcquire() {
		w.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	draft := w.draft
	w.mu.Unlock()

	log.Info("Submitting slot",
		zap.String(utils.FieldSlotNumber, draft.Number),
		zap.String(utils.FieldLocation, draft.Location))

	reqCtx, cancel := w.life.bind(ctx)
	return startTask(func() error {
		defer cancel()
		err := w.backend.CreateSlot(reqCtx, draft, w.loading.Set)
		if !w.life.alive() {
			log.Debug("Dropping completion of torn-down dialog", zap.String(utils.FieldSlotNumber, draft.Number))
			return err
		}
		if err != nil {
			log.Warn("Slot creation failed", zap.String(utils.FieldSlotNumber, draft.Number), zap.Error(err))
			return err
		}
		w.Close()
		return nil
	}), nil
}

// Close resets the form and dismisses the dialog. It is safe to call at any time.
func (w *CreateSlotWorkflow) Close() {
	w.mu.Lock()
	w.draft = slot.NewDraft()
	w.errors = slot.FieldErrors{}
	w.mu.Unlock()

	if w.onClose != nil {
		w.onClose()
	}
}

// Teardown ends the workflow. Any in-flight request is cancelled and its
// completion no longer changes the form.
func (w *CreateSlotWorkflow) Teardown() {
	w.life.end()
}

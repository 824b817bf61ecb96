package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/anmicius0/parking-slot-manager/internal/client"
	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"go.uber.org/zap"
)

// BatchCreateWorkflow holds the rows of the multi-slot creation dialog.
// rows and errors always have the same length, which is never below one.
type BatchCreateWorkflow struct {
	backend client.Backend
	loading *LoadingFlag
	onClose func()
	life    *lifetime

	mu     sync.Mutex
	rows   []slot.Draft
	errors []slot.FieldErrors
}

// NewBatchCreateWorkflow creates the workflow with a single default row.
// onClose is handed to the backend as the completion callback.
func NewBatchCreateWorkflow(backend client.Backend, loading *LoadingFlag, onClose func()) *BatchCreateWorkflow {
	w := &BatchCreateWorkflow{
		backend: backend,
		loading: loading,
		onClose: onClose,
		life:    newLifetime(),
	}
	w.reset()
	return w
}

// reset must be called with mu held or before the workflow is shared.
func (w *BatchCreateWorkflow) reset() {
	w.rows = []slot.Draft{slot.NewDraft()}
	w.errors = []slot.FieldErrors{{}}
}

// Len returns the number of rows.
func (w *BatchCreateWorkflow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.rows)
}

// Rows returns a copy of the drafts in display order.
func (w *BatchCreateWorkflow) Rows() []slot.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.rows)
}

// Errors returns a copy of the per-row messages, index-aligned with Rows.
func (w *BatchCreateWorkflow) Errors() []slot.FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]slot.FieldErrors, len(w.errors))
	for i, fe := range w.errors {
		out[i] = maps.Clone(fe)
	}
	return out
}

// AddRow appends a default row and returns the new row count.
func (w *BatchCreateWorkflow) AddRow() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rows = append(w.rows, slot.NewDraft())
	w.errors = append(w.errors, slot.FieldErrors{})
	return len(w.rows)
}

// RemoveRow deletes row i, keeping the order of the others. It reports
// false and changes nothing when i is out of range or only one row is left.
func (w *BatchCreateWorkflow) RemoveRow(i int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.rows) == 1 || i < 0 || i >= len(w.rows) {
		return false
	}
	w.rows = slices.Delete(w.rows, i, i+1)
	w.errors = slices.Delete(w.errors, i, i+1)
	return true
}

// UpdateField replaces one field of row i. The row's errors are left as they are.
func (w *BatchCreateWorkflow) UpdateField(i int, name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.rows) {
		return fmt.Errorf("update row %d: %w", i, ErrRowOutOfRange)
	}
	updated, ok := w.rows[i].With(name, value)
	if !ok {
		return fmt.Errorf("update row %d field '%s': %w", i, name, ErrUnknownField)
	}
	w.rows[i] = updated
	return nil
}

// ValidateAll recomputes the errors of every row and reports whether all rows are valid.
func (w *BatchCreateWorkflow) ValidateAll() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.validateLocked()
}

func (w *BatchCreateWorkflow) validateLocked() bool {
	errs := make([]slot.FieldErrors, len(w.rows))
	valid := true
	for i, d := range w.rows {
		errs[i] = slot.Validate(d, slot.FeePresence)
		if !errs[i].Valid() {
			valid = false
		}
	}
	w.errors = errs
	return valid
}

// Submit validates every row and sends all of them in one backend call. The
// form is reset to a single empty row as soon as the call is dispatched; the
// backend clears the loading flag and closes the dialog when it finishes.
func (w *BatchCreateWorkflow) Submit(ctx context.Context) (*Task, error) {
	log := utils.WithComponent("batch_create")

	w.mu.Lock()
	if !w.life.alive() {
		w.mu.Unlock()
		return nil, ErrWorkflowClosed
	}
	if !w.validateLocked() {
		rows, invalid := len(w.errors), 0
		for _, fe := range w.errors {
			if !fe.Valid() {
				invalid++
			}
		}
		w.mu.Unlock()
		log.Debug("Submit blocked by validation",
			zap.Int(utils.FieldRowCount, rows),
			zap.Int(utils.FieldErrorCount, invalid))
		return nil, ErrValidationFailed
	}
	if !w.loading.TryAcquire() {
		w.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	drafts := w.rows
	w.reset()
	w.mu.Unlock()

	log.Info("Submitting slots", zap.Int(utils.FieldRowCount, len(drafts)))

	reqCtx, cancel := w.life.bind(ctx)
	return startTask(func() error {
		defer cancel()
		return w.backend.CreateSlots(reqCtx, client.BatchRequest{
			Drafts:          drafts,
			OnLoadingChange: w.loading.Set,
			OnDone:          w.done,
		})
	}), nil
}

func (w *BatchCreateWorkflow) done() {
	if !w.life.alive() {
		utils.WithComponent("batch_create").Debug("Dropping completion of torn-down dialog")
		return
	}
	if w.onClose != nil {
		w.onClose()
	}
}

// Teardown ends the workflow. Any in-flight request is cancelled and its
// completion no longer closes the dialog.
func (w *BatchCreateWorkflow) Teardown() {
	w.life.end()
}

// Close discards every row and dismisses the dialog.
func (w *BatchCreateWorkflow) Close() {
	w.mu.Lock()
	w.reset()
	w.mu.Unlock()

	if w.onClose != nil {
		w.onClose()
	}
}

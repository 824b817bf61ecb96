// Package tui renders the slot dialogs as terminal forms and drives the
// service workflows from them.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/anmicius0/parking-slot-manager/internal/service"
	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// ErrNothingToEdit is returned by Edit when the workflow holds no record.
var ErrNothingToEdit = errors.New("no slot loaded for editing")

// Dialogs runs the create, create-many and edit dialogs.
type Dialogs struct {
	styles Styles
	out    io.Writer
	run    func(ctx context.Context, form *huh.Form) error
}

// NewDialogs creates dialogs writing messages to out.
func NewDialogs(styles Styles, out io.Writer) *Dialogs {
	return &Dialogs{
		styles: styles,
		out:    out,
		run: func(ctx context.Context, form *huh.Form) error {
			return form.RunWithContext(ctx)
		},
	}
}

func (d *Dialogs) newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(d.styles.Form)
}

func (d *Dialogs) println(style lipgloss.Style, msg string) {
	fmt.Fprintln(d.out, style.Render(msg))
}

// confirm asks a yes/no question; the default answer is no.
func (d *Dialogs) confirm(ctx context.Context, title string) (bool, error) {
	var ok bool
	err := d.run(ctx, d.newForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(&ok),
	)))
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

// Create runs the single slot dialog until the slot is created or the user
// cancels. A failed request keeps the entered values for another attempt.
func (d *Dialogs) Create(ctx context.Context, w *service.CreateSlotWorkflow) error {
	log := utils.WithComponent("tui")
	for {
		before := w.Draft()
		draft := before
		form := d.newForm(huh.NewGroup(d.draftFields(&draft, w.Errors())...).Title("Create Parking Slot"))

		if err := d.run(ctx, form); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				w.Close()
				return nil
			}
			return fmt.Errorf("create dialog: %w", err)
		}
		if err := pushDraft(w.UpdateField, before, draft); err != nil {
			return err
		}

		task, err := w.Submit(ctx)
		if errors.Is(err, service.ErrValidationFailed) {
			d.println(d.styles.Error, "Please correct the highlighted fields.")
			continue
		}
		if err != nil {
			return err
		}

		if err := task.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Debug("Create failed, offering retry", zap.Error(err))
			retry, cerr := d.confirm(ctx, "Creating the slot failed. Try again?")
			if cerr != nil {
				return cerr
			}
			if !retry {
				w.Close()
				return err
			}
			continue
		}
		return nil
	}
}

type batchAction string

const (
	batchSubmit batchAction = "submit"
	batchAdd    batchAction = "add"
	batchRemove batchAction = "remove"
	batchReview batchAction = "review"
	batchCancel batchAction = "cancel"
)

// batchActions lists the choices offered after editing rows. Removal is only
// offered while more than one row exists.
func batchActions(rows int) []huh.Option[batchAction] {
	opts := []huh.Option[batchAction]{
		huh.NewOption("Create all slots", batchSubmit),
		huh.NewOption("Add another slot", batchAdd),
	}
	if rows > 1 {
		opts = append(opts, huh.NewOption("Remove a slot", batchRemove))
	}
	return append(opts,
		huh.NewOption("Review all slots", batchReview),
		huh.NewOption("Cancel", batchCancel),
	)
}

// rowLabel names a row in menus.
func rowLabel(i int, d slot.Draft) string {
	label := fmt.Sprintf("Slot %d", i+1)
	if d.Number != "" {
		label += " · " + d.Number
	}
	if d.Location != "" {
		label += " @ " + d.Location
	}
	return label
}

// rowsWithErrors returns the indexes of rows that failed validation.
func rowsWithErrors(errs []slot.FieldErrors) []int {
	var out []int
	for i, fe := range errs {
		if !fe.Valid() {
			out = append(out, i)
		}
	}
	return out
}

func allRows(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// editRow shows the form for row i. aborted reports a cancel.
func (d *Dialogs) editRow(ctx context.Context, w *service.BatchCreateWorkflow, i int) (aborted bool, err error) {
	rows, errs := w.Rows(), w.Errors()
	if i >= len(rows) {
		return false, nil
	}
	before := rows[i]
	draft := before
	title := fmt.Sprintf("Create Multiple Slots · %d of %d", i+1, len(rows))
	form := d.newForm(huh.NewGroup(d.draftFields(&draft, errs[i])...).Title(title))

	if err := d.run(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return true, nil
		}
		return false, fmt.Errorf("create-many dialog: %w", err)
	}
	return false, pushDraft(func(name, value string) error {
		return w.UpdateField(i, name, value)
	}, before, draft)
}

func (d *Dialogs) pickRow(ctx context.Context, w *service.BatchCreateWorkflow) (int, error) {
	rows := w.Rows()
	opts := make([]huh.Option[int], 0, len(rows))
	for i, r := range rows {
		opts = append(opts, huh.NewOption(rowLabel(i, r), i))
	}
	choice := len(rows) - 1
	err := d.run(ctx, d.newForm(huh.NewGroup(
		huh.NewSelect[int]().Title("Remove which slot?").Options(opts...).Value(&choice),
	)))
	return choice, err
}

// CreateMany runs the multi slot dialog. All rows are submitted together;
// the dialog closes when the request finishes, whatever its outcome.
func (d *Dialogs) CreateMany(ctx context.Context, w *service.BatchCreateWorkflow) error {
	pending := []int{0}
	for {
		for _, i := range pending {
			aborted, err := d.editRow(ctx, w, i)
			if err != nil {
				return err
			}
			if aborted {
				w.Close()
				return nil
			}
		}
		pending = nil

		action := batchSubmit
		err := d.run(ctx, d.newForm(huh.NewGroup(
			huh.NewSelect[batchAction]().
				Title(fmt.Sprintf("%d slot(s) entered", w.Len())).
				Options(batchActions(w.Len())...).
				Value(&action),
		)))
		if errors.Is(err, huh.ErrUserAborted) {
			action = batchCancel
		} else if err != nil {
			return fmt.Errorf("create-many dialog: %w", err)
		}

		switch action {
		case batchAdd:
			pending = []int{w.AddRow() - 1}
		case batchRemove:
			i, err := d.pickRow(ctx, w)
			if err != nil && !errors.Is(err, huh.ErrUserAborted) {
				return fmt.Errorf("create-many dialog: %w", err)
			}
			if err == nil {
				w.RemoveRow(i)
			}
		case batchReview:
			pending = allRows(w.Len())
		case batchCancel:
			w.Close()
			return nil
		case batchSubmit:
			task, err := w.Submit(ctx)
			if errors.Is(err, service.ErrValidationFailed) {
				d.println(d.styles.Error, "Some slots need attention.")
				pending = rowsWithErrors(w.Errors())
				continue
			}
			if err != nil {
				return err
			}
			return task.Wait(ctx)
		}
	}
}

// Edit runs the edit dialog for the record loaded into w and saves the
// changes through it.
func (d *Dialogs) Edit(ctx context.Context, w *service.EditSlotWorkflow) error {
	current, ok := w.Current()
	if !ok {
		return ErrNothingToEdit
	}
	before := slot.DraftOf(current)
	draft := before

	fields := d.draftFields(&draft, nil)
	if fee, ok := fields[len(fields)-1].(*huh.Input); ok {
		fee.Validate(validateFee)
	}
	form := d.newForm(huh.NewGroup(fields...).Title("Edit Parking Slot"))

	if err := d.run(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			w.Close()
			return nil
		}
		return fmt.Errorf("edit dialog: %w", err)
	}
	if err := pushDraft(w.UpdateField, before, draft); err != nil {
		return err
	}
	w.Save()
	return nil
}

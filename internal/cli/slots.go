package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/anmicius0/parking-slot-manager/internal/service"
	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"go.uber.org/zap"
)

// ErrInvalidInput is returned when slots given on the command line fail validation.
var ErrInvalidInput = errors.New("invalid slot input")

// formatFieldErrors renders one row's errors in form order.
func formatFieldErrors(errs slot.FieldErrors) string {
	parts := make([]string, 0, len(errs))
	for _, name := range slot.Fields() {
		if msg, ok := errs[name]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", name, msg))
		}
	}
	return strings.Join(parts, "; ")
}

type CreateCmd struct {
	Number      string `help:"Slot number. Omit to open the dialog."`
	Size        string `help:"Slot size (SMALL, MEDIUM, LARGE)." default:"MEDIUM"`
	VehicleType string `help:"Vehicle type (CAR, MOTORCYCLE, TRUCK)." default:"CAR"`
	Location    string `help:"Location of the slot."`
	Fee         string `help:"Fee per hour."`
}

func (c *CreateCmd) draft() slot.Draft {
	return slot.Draft{
		Number:      c.Number,
		Size:        slot.Size(strings.ToUpper(c.Size)),
		VehicleType: slot.VehicleType(strings.ToUpper(c.VehicleType)),
		Location:    c.Location,
		FeePerHour:  c.Fee,
	}
}

func (c *CreateCmd) Run(ctx context.Context, app *Context) error {
	w := service.NewCreateSlotWorkflow(app.Backend, app.Loading, nil)
	defer w.Teardown()

	if c.Number == "" {
		return app.Dialogs.Create(ctx, w)
	}

	d := c.draft()
	for _, name := range slot.Fields() {
		if err := w.UpdateField(name, d.Value(name)); err != nil {
			return err
		}
	}
	task, err := w.Submit(ctx)
	if errors.Is(err, service.ErrValidationFailed) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, formatFieldErrors(w.Errors()))
	}
	if err != nil {
		return err
	}
	return task.Wait(ctx)
}

type CreateManyCmd struct {
	File string `help:"JSON file holding an array of slots. Omit to open the dialog." type:"existingfile"`
}

// loadDrafts reads a JSON array of slots. Missing size and vehicle type take
// the form defaults.
func loadDrafts(path string) ([]slot.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var drafts []slot.Draft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: %s holds no slots", ErrInvalidInput, path)
	}
	for i := range drafts {
		if drafts[i].Size == "" {
			drafts[i].Size = slot.DefaultSize
		}
		if drafts[i].VehicleType == "" {
			drafts[i].VehicleType = slot.DefaultVehicleType
		}
	}
	return drafts, nil
}

// fillBatch loads drafts into the rows of w, adding rows as needed.
func fillBatch(w *service.BatchCreateWorkflow, drafts []slot.Draft) error {
	for i, d := range drafts {
		if i >= w.Len() {
			w.AddRow()
		}
		for _, name := range slot.Fields() {
			if err := w.UpdateField(i, name, d.Value(name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *CreateManyCmd) Run(ctx context.Context, app *Context) error {
	w := service.NewBatchCreateWorkflow(app.Backend, app.Loading, nil)
	defer w.Teardown()

	if c.File == "" {
		return app.Dialogs.CreateMany(ctx, w)
	}

	drafts, err := loadDrafts(c.File)
	if err != nil {
		return err
	}
	if err := fillBatch(w, drafts); err != nil {
		return err
	}

	task, err := w.Submit(ctx)
	if errors.Is(err, service.ErrValidationFailed) {
		var lines []string
		for i, fe := range w.Errors() {
			if !fe.Valid() {
				lines = append(lines, fmt.Sprintf("row %d: %s", i+1, formatFieldErrors(fe)))
			}
		}
		return fmt.Errorf("%w:\n%s", ErrInvalidInput, strings.Join(lines, "\n"))
	}
	if err != nil {
		return err
	}
	return task.Wait(ctx)
}

type EditCmd struct {
	ID string `arg:"" help:"ID of the slot to edit."`
}

func (c *EditCmd) Run(ctx context.Context, app *Context) error {
	current, err := app.Slots.GetSlot(ctx, c.ID)
	if err != nil {
		return err
	}

	var saveErr error
	w := service.NewEditSlotWorkflow(func(s slot.Slot) {
		updated, err := app.Slots.UpdateSlot(ctx, s)
		if err != nil {
			saveErr = err
			return
		}
		utils.WithComponent("cli").Info("Slot updated",
			zap.String(utils.FieldSlotID, updated.ID),
			zap.String(utils.FieldSlotNumber, updated.Number))
		fmt.Fprintln(app.Out, app.Styles.Success.Render(fmt.Sprintf("✓ Slot %s updated", updated.Number)))
	}, nil)
	w.Load(current)

	if err := app.Dialogs.Edit(ctx, w); err != nil {
		return err
	}
	return saveErr
}

type ListCmd struct {
	Location string `help:"Only show slots at this location."`
}

func (c *ListCmd) Run(ctx context.Context, app *Context) error {
	slots, err := app.Slots.ListSlots(ctx)
	if err != nil {
		return err
	}
	if c.Location != "" {
		kept := slots[:0]
		for _, s := range slots {
			if strings.EqualFold(s.Location, c.Location) {
				kept = append(kept, s)
			}
		}
		slots = kept
	}
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Location != slots[j].Location {
			return slots[i].Location < slots[j].Location
		}
		return slots[i].Number < slots[j].Number
	})
	fmt.Fprintln(app.Out, app.Styles.RenderSlots(slots))
	return nil
}

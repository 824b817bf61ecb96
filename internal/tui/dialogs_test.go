package tui

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/anmicius0/parking-slot-manager/internal/client"
	"github.com/anmicius0/parking-slot-manager/internal/config"
	"github.com/anmicius0/parking-slot-manager/internal/service"
	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubOut struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *stubOut) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *stubOut) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) CreateSlot(ctx context.Context, draft slot.Draft, onLoadingChange func(bool)) error {
	args := m.Called(ctx, draft, onLoadingChange)
	onLoadingChange(false)
	return args.Error(0)
}

func (m *MockBackend) CreateSlots(ctx context.Context, req client.BatchRequest) error {
	args := m.Called(ctx, req)
	req.OnLoadingChange(false)
	req.OnDone()
	return args.Error(0)
}

// scriptedRun answers form runs in order; the last answer repeats.
func scriptedRun(calls *int, answers ...error) func(context.Context, *huh.Form) error {
	return func(context.Context, *huh.Form) error {
		i := min(*calls, len(answers)-1)
		*calls++
		return answers[i]
	}
}

func newTestDialogs(out *stubOut, run func(context.Context, *huh.Form) error) *Dialogs {
	d := NewDialogs(NewStyles(config.DefaultTheme()), out)
	d.run = run
	return d
}

var validDraft = slot.Draft{
	Number: "A1", Size: slot.SizeMedium, VehicleType: slot.VehicleCar, Location: "L1", FeePerHour: "5",
}

func fillCreate(t *testing.T, w *service.CreateSlotWorkflow) {
	t.Helper()
	require.NoError(t, pushDraft(w.UpdateField, w.Draft(), validDraft))
}

func TestCreate_Success(t *testing.T) {
	backend := new(MockBackend)
	backend.On("CreateSlot", mock.Anything, validDraft, mock.Anything).Return(nil).Once()
	closed := 0
	w := service.NewCreateSlotWorkflow(backend, service.NewLoadingFlag(), func() { closed++ })
	fillCreate(t, w)

	calls := 0
	err := newTestDialogs(&stubOut{}, scriptedRun(&calls, nil)).Create(context.Background(), w)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, closed)
	assert.Equal(t, slot.NewDraft(), w.Draft())
	backend.AssertExpectations(t)
}

func TestCreate_Abort(t *testing.T) {
	backend := new(MockBackend)
	closed := 0
	w := service.NewCreateSlotWorkflow(backend, service.NewLoadingFlag(), func() { closed++ })

	calls := 0
	err := newTestDialogs(&stubOut{}, scriptedRun(&calls, huh.ErrUserAborted)).Create(context.Background(), w)

	require.NoError(t, err)
	assert.Equal(t, 1, closed)
	backend.AssertNotCalled(t, "CreateSlot", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_ReshowsInvalidForm(t *testing.T) {
	backend := new(MockBackend)
	w := service.NewCreateSlotWorkflow(backend, service.NewLoadingFlag(), nil)
	out := &stubOut{}

	calls := 0
	err := newTestDialogs(out, scriptedRun(&calls, nil, huh.ErrUserAborted)).Create(context.Background(), w)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Contains(t, out.String(), "Please correct the highlighted fields.")
	backend.AssertNotCalled(t, "CreateSlot", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_FailureWithoutRetry(t *testing.T) {
	boom := errors.New("boom")
	backend := new(MockBackend)
	backend.On("CreateSlot", mock.Anything, validDraft, mock.Anything).Return(boom).Once()
	closed := 0
	w := service.NewCreateSlotWorkflow(backend, service.NewLoadingFlag(), func() { closed++ })
	fillCreate(t, w)

	calls := 0
	err := newTestDialogs(&stubOut{}, scriptedRun(&calls, nil)).Create(context.Background(), w)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls, "slot form then retry prompt")
	assert.Equal(t, 1, closed)
}

func TestCreateMany_SubmitsRows(t *testing.T) {
	backend := new(MockBackend)
	backend.On("CreateSlots", mock.Anything, mock.MatchedBy(func(req client.BatchRequest) bool {
		return len(req.Drafts) == 1 && req.Drafts[0] == validDraft
	})).Return(nil).Once()
	closed := 0
	w := service.NewBatchCreateWorkflow(backend, service.NewLoadingFlag(), func() { closed++ })
	require.NoError(t, pushDraft(func(name, value string) error {
		return w.UpdateField(0, name, value)
	}, w.Rows()[0], validDraft))

	calls := 0
	err := newTestDialogs(&stubOut{}, scriptedRun(&calls, nil)).CreateMany(context.Background(), w)

	require.NoError(t, err)
	assert.Equal(t, 2, calls, "row form then action menu")
	assert.Equal(t, 1, closed)
	backend.AssertExpectations(t)
}

func TestCreateMany_Abort(t *testing.T) {
	backend := new(MockBackend)
	closed := 0
	w := service.NewBatchCreateWorkflow(backend, service.NewLoadingFlag(), func() { closed++ })

	calls := 0
	err := newTestDialogs(&stubOut{}, scriptedRun(&calls, huh.ErrUserAborted)).CreateMany(context.Background(), w)

	require.NoError(t, err)
	assert.Equal(t, 1, closed)
	backend.AssertNotCalled(t, "CreateSlots", mock.Anything, mock.Anything)
}

func TestEdit(t *testing.T) {
	original := slot.Slot{ID: "s1", Number: "A1", Size: slot.SizeMedium, VehicleType: slot.VehicleCar, Location: "L1", FeePerHour: decimal.NewFromInt(5)}

	t.Run("Saves", func(t *testing.T) {
		var saved []slot.Slot
		w := service.NewEditSlotWorkflow(func(s slot.Slot) { saved = append(saved, s) }, nil)
		w.Load(&original)

		calls := 0
		err := newTestDialogs(&stubOut{}, scriptedRun(&calls, nil)).Edit(context.Background(), w)

		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, original.ID, saved[0].ID)
		assert.True(t, original.FeePerHour.Equal(saved[0].FeePerHour))
	})

	t.Run("Cancel", func(t *testing.T) {
		saves, closed := 0, 0
		w := service.NewEditSlotWorkflow(func(slot.Slot) { saves++ }, func() { closed++ })
		w.Load(&original)

		calls := 0
		err := newTestDialogs(&stubOut{}, scriptedRun(&calls, huh.ErrUserAborted)).Edit(context.Background(), w)

		require.NoError(t, err)
		assert.Equal(t, 0, saves)
		assert.Equal(t, 1, closed)
	})

	t.Run("Nothing loaded", func(t *testing.T) {
		w := service.NewEditSlotWorkflow(nil, nil)
		err := newTestDialogs(&stubOut{}, scriptedRun(new(int), nil)).Edit(context.Background(), w)
		assert.ErrorIs(t, err, ErrNothingToEdit)
	})
}

func TestNotifier(t *testing.T) {
	out := &stubOut{}
	n := NewNotifier(out, NewStyles(config.DefaultTheme()))

	n.Success("Slot A1 created")
	n.Failure("Failed to create slot", errors.New("boom"))

	assert.Contains(t, out.String(), "Slot A1 created")
	assert.Contains(t, out.String(), "Failed to create slot")
}

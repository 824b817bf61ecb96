package client

import (
	"context"
	"errors"
	"testing"

	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSlotClient is a mock implementation of SlotClient
type MockSlotClient struct {
	mock.Mock
}

func (m *MockSlotClient) CreateSlot(ctx context.Context, draft slot.Draft) (*slot.Slot, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slot.Slot), args.Error(1)
}

func (m *MockSlotClient) CreateSlots(ctx context.Context, drafts []slot.Draft) ([]slot.Slot, error) {
	args := m.Called(ctx, drafts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]slot.Slot), args.Error(1)
}

func (m *MockSlotClient) ListSlots(ctx context.Context) ([]slot.Slot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]slot.Slot), args.Error(1)
}

func (m *MockSlotClient) GetSlot(ctx context.Context, id string) (*slot.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slot.Slot), args.Error(1)
}

func (m *MockSlotClient) UpdateSlot(ctx context.Context, s slot.Slot) (*slot.Slot, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slot.Slot), args.Error(1)
}

type recordingNotifier struct {
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(message string)            { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Failure(message string, err error) { n.failures = append(n.failures, message) }

func TestBackendCreateSlot(t *testing.T) {
	draft := slot.Draft{Number: "A01"}

	t.Run("Success clears loading", func(t *testing.T) {
		mockClient := new(MockSlotClient)
		mockClient.On("CreateSlot", mock.Anything, draft).Return(&slot.Slot{ID: "1", Number: "A01"}, nil)
		notifier := &recordingNotifier{}

		var states []bool
		err := NewSlotBackend(mockClient, notifier).CreateSlot(context.Background(), draft, func(b bool) { states = append(states, b) })

		assert.NoError(t, err)
		assert.Equal(t, []bool{false}, states)
		assert.Equal(t, []string{"Slot A01 created"}, notifier.successes)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure clears loading", func(t *testing.T) {
		mockClient := new(MockSlotClient)
		mockClient.On("CreateSlot", mock.Anything, draft).Return(nil, &HTTPError{StatusCode: 409, Body: "duplicate"})
		notifier := &recordingNotifier{}

		var states []bool
		err := NewSlotBackend(mockClient, notifier).CreateSlot(context.Background(), draft, func(b bool) { states = append(states, b) })

		assert.Error(t, err)
		assert.Equal(t, []bool{false}, states)
		assert.Equal(t, []string{"Failed to create slot: duplicate"}, notifier.failures)
	})
}

func TestBackendCreateSlots(t *testing.T) {
	drafts := []slot.Draft{{Number: "A01"}, {Number: "A02"}}

	for _, fail := range []bool{false, true} {
		mockClient := new(MockSlotClient)
		if fail {
			mockClient.On("CreateSlots", mock.Anything, drafts).Return(nil, errors.New("connection refused"))
		} else {
			mockClient.On("CreateSlots", mock.Anything, drafts).Return([]slot.Slot{{ID: "1"}, {ID: "2"}}, nil)
		}
		notifier := &recordingNotifier{}

		loading := true
		done := 0
		err := NewSlotBackend(mockClient, notifier).CreateSlots(context.Background(), BatchRequest{
			Drafts:          drafts,
			OnLoadingChange: func(b bool) { loading = b },
			OnDone:          func() { done++ },
		})

		assert.Equal(t, fail, err != nil)
		assert.False(t, loading)
		assert.Equal(t, 1, done)
		if fail {
			assert.Equal(t, []string{"Failed to create slots"}, notifier.failures)
		} else {
			assert.Equal(t, []string{"2 slots created"}, notifier.successes)
		}
	}
}

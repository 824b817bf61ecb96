package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anmicius0/parking-slot-manager/internal/slot"
)

const (
	SlotsPath     = "/slots"
	BulkSlotsPath = "/slots/bulk"
)

// slotClient is an unexported concrete implementation of SlotClient.
type slotClient struct {
	*HTTPClient
}

// NewSlotClient creates a SlotClient for the API rooted at baseURL. token may
// be empty when the API is unauthenticated.
func NewSlotClient(baseURL, token string, timeout time.Duration) SlotClient {
	return &slotClient{
		HTTPClient: NewHTTPClient(baseURL, token, timeout),
	}
}

func (c *slotClient) CreateSlot(ctx context.Context, draft slot.Draft) (*slot.Slot, error) {
	resp, err := c.DoReq(ctx, http.MethodPost, SlotsPath, draft, nil)
	if err != nil {
		return nil, fmt.Errorf("create slot '%s': %w", draft.Number, err)
	}
	var created slot.Slot
	if err := json.Unmarshal(resp.Bytes(), &created); err != nil {
		return nil, fmt.Errorf("create slot '%s': failed to unmarshal response: %w", draft.Number, err)
	}
	return &created, nil
}

func (c *slotClient) CreateSlots(ctx context.Context, drafts []slot.Draft) ([]slot.Slot, error) {
	resp, err := c.DoReq(ctx, http.MethodPost, BulkSlotsPath, bulkCreateRequest{Slots: drafts}, nil)
	if err != nil {
		return nil, fmt.Errorf("create %d slots: %w", len(drafts), err)
	}
	var out bulkCreateResponse
	if err := json.Unmarshal(resp.Bytes(), &out); err != nil {
		return nil, fmt.Errorf("create %d slots: failed to unmarshal response: %w", len(drafts), err)
	}
	return out.Created, nil
}

func (c *slotClient) ListSlots(ctx context.Context) ([]slot.Slot, error) {
	resp, err := c.DoReq(ctx, http.MethodGet, SlotsPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	var slots []slot.Slot
	if err := json.Unmarshal(resp.Bytes(), &slots); err != nil {
		return nil, fmt.Errorf("list slots: failed to unmarshal response: %w", err)
	}
	return slots, nil
}

func (c *slotClient) GetSlot(ctx context.Context, id string) (*slot.Slot, error) {
	resp, err := c.DoReq(ctx, http.MethodGet, fmt.Sprintf("%s/%s", SlotsPath, id), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get slot '%s': %w", id, err)
	}
	var s slot.Slot
	if err := json.Unmarshal(resp.Bytes(), &s); err != nil {
		return nil, fmt.Errorf("get slot '%s': failed to unmarshal response: %w", id, err)
	}
	return &s, nil
}

func (c *slotClient) UpdateSlot(ctx context.Context, s slot.Slot) (*slot.Slot, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("update slot: id is empty")
	}
	resp, err := c.DoReq(ctx, http.MethodPut, fmt.Sprintf("%s/%s", SlotsPath, s.ID), toSlotRequest(s), nil)
	if err != nil {
		return nil, fmt.Errorf("update slot '%s': %w", s.ID, err)
	}
	var updated slot.Slot
	if err := json.Unmarshal(resp.Bytes(), &updated); err != nil {
		return nil, fmt.Errorf("update slot '%s': failed to unmarshal response: %w", s.ID, err)
	}
	return &updated, nil
}

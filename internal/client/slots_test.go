package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) SlotClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSlotClient(srv.URL+"/api/v1/", "secret", 5*time.Second)
}

func TestCreateSlot(t *testing.T) {
	draft := slot.Draft{Number: "A01", Size: slot.SizeMedium, VehicleType: slot.VehicleCar, Location: "Basement A", FeePerHour: "2.5"}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/slots", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))

		var got slot.Draft
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, draft, got)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"s-1","number":"A01","size":"MEDIUM","vehicleType":"CAR","location":"Basement A","feePerHour":2.5}`))
	})

	created, err := c.CreateSlot(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "s-1", created.ID)
	assert.True(t, decimal.RequireFromString("2.5").Equal(created.FeePerHour))
}

func TestCreateSlots(t *testing.T) {
	drafts := []slot.Draft{
		{Number: "A01", Size: slot.SizeSmall, VehicleType: slot.VehicleMotorcycle, Location: "L1", FeePerHour: "1"},
		{Number: "A02", Size: slot.SizeLarge, VehicleType: slot.VehicleTruck, Location: "L1", FeePerHour: "4"},
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/slots/bulk", r.URL.Path)

		var got bulkCreateRequest
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, drafts, got.Slots)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"created":[{"id":"1","number":"A01"},{"id":"2","number":"A02"}],"count":2}`))
	})

	created, err := c.CreateSlots(context.Background(), drafts)
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestHTTPErrorSurfaced(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`slot A01 already exists`))
	})

	_, err := c.CreateSlot(context.Background(), slot.Draft{Number: "A01"})
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.Equal(t, "slot A01 already exists", httpErr.Body)
}

func TestGetAndUpdateSlot(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/slots/s-9", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"id":"s-9","number":"B2","size":"SMALL","vehicleType":"CAR","location":"Roof","feePerHour":"3"}`))
		case http.MethodPut:
			var got slotRequest
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, "7", got.FeePerHour)
			_, _ = w.Write([]byte(`{"id":"s-9","number":"B2","size":"SMALL","vehicleType":"CAR","location":"Roof","feePerHour":"7"}`))
		}
	})

	s, err := c.GetSlot(context.Background(), "s-9")
	require.NoError(t, err)
	assert.Equal(t, "B2", s.Number)

	s.FeePerHour = decimal.NewFromInt(7)
	updated, err := c.UpdateSlot(context.Background(), *s)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7).Equal(updated.FeePerHour))

	_, err = c.UpdateSlot(context.Background(), slot.Slot{})
	assert.Error(t, err)
}

func TestListSlots(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"1","number":"A01"}]`))
	})

	slots, err := c.ListSlots(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "A01", slots[0].Number)
}

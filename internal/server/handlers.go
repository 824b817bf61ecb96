package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles request-time dependencies for the API routes.
type Handler struct {
	store *SlotStore
	log   *zap.Logger
}

// newHandler constructs a Handler with attached dependencies.
func newHandler(store *SlotStore) *Handler {
	return &Handler{
		store: store,
		log:   utils.WithComponent("dev_server"),
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": StatusHealthy, "slots": h.store.Len()})
}

// validateDraft applies the form rules plus the closed value sets, which the
// dialogs enforce through their select inputs.
func validateDraft(d slot.Draft) slot.FieldErrors {
	errs := slot.Validate(d, slot.FeeStrict)
	if _, set := errs[slot.FieldSize]; !set && !d.Size.Valid() {
		errs[slot.FieldSize] = messageSizeInvalid
	}
	if _, set := errs[slot.FieldVehicleType]; !set && !d.VehicleType.Valid() {
		errs[slot.FieldVehicleType] = messageVehicleTypeInvalid
	}
	return errs
}

func (h *Handler) invalidBody(c *gin.Context, err error) {
	h.log.Warn("Invalid request body",
		zap.String(utils.FieldPath, c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusUnprocessableEntity, newResponseBuilder().BuildErrorResponse(
		ErrorCodeInvalidRequestBody,
		MessageInvalidRequestBody,
		err.Error(),
	))
}

func (h *Handler) storeError(c *gin.Context, err error) {
	rb := newResponseBuilder()
	switch {
	case errors.Is(err, ErrSlotNotFound):
		c.JSON(http.StatusNotFound, rb.BuildErrorResponse(ErrorCodeNotFound, err.Error(), nil))
	case errors.Is(err, ErrDuplicateSlot):
		c.JSON(http.StatusConflict, rb.BuildErrorResponse(ErrorCodeConflict, err.Error(), nil))
	default:
		h.log.Error("Slot store failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, rb.BuildErrorResponse("internal_error", err.Error(), nil))
	}
}

func (h *Handler) createSlot(c *gin.Context) {
	var draft slot.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.invalidBody(c, err)
		return
	}

	if errs := validateDraft(draft); !errs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, newResponseBuilder().BuildValidationFailedResponse(
			[]RowError{{Row: 0, Number: draft.Number, Errors: errs}},
		))
		return
	}

	created, err := h.store.Create(draft)
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.log.Info("Slot created",
		zap.String(utils.FieldSlotID, created.ID),
		zap.String(utils.FieldSlotNumber, created.Number),
		zap.String(utils.FieldLocation, created.Location))
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) createSlots(c *gin.Context) {
	var batch bulkCreateRequest
	if err := c.ShouldBindJSON(&batch); err != nil {
		h.invalidBody(c, err)
		return
	}

	if len(batch.Slots) == 0 {
		c.JSON(http.StatusUnprocessableEntity, newResponseBuilder().BuildErrorResponse(
			ErrorCodeValidationFailed,
			MessageBatchEmpty,
			nil,
		))
		return
	}

	var rowErrs []RowError
	for i, d := range batch.Slots {
		if errs := validateDraft(d); !errs.Valid() {
			rowErrs = append(rowErrs, RowError{Row: i, Number: d.Number, Errors: errs})
		}
	}
	if len(rowErrs) == 0 {
		var created []slot.Slot
		created, rowErrs = h.store.CreateMany(batch.Slots)
		if len(rowErrs) == 0 {
			h.log.Info("Slots created", zap.Int(utils.FieldRowCount, len(created)))
			c.JSON(http.StatusCreated, bulkCreateResponse{Created: created, Count: len(created)})
			return
		}
	}

	h.log.Info("Batch rejected",
		zap.Int(utils.FieldRowCount, len(batch.Slots)),
		zap.Int(utils.FieldErrorCount, len(rowErrs)))
	c.JSON(http.StatusUnprocessableEntity, newResponseBuilder().BuildValidationFailedResponse(rowErrs))
}

func (h *Handler) listSlots(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

func (h *Handler) getSlot(c *gin.Context) {
	id := c.Param("id")
	sl, err := h.store.Get(id)
	if err != nil {
		h.log.Debug("Slot not found", zap.String(utils.FieldSlotID, id))
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sl)
}

func (h *Handler) updateSlot(c *gin.Context) {
	id := c.Param("id")
	var draft slot.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.invalidBody(c, err)
		return
	}

	if errs := validateDraft(draft); !errs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, newResponseBuilder().BuildValidationFailedResponse(
			[]RowError{{Row: 0, Number: draft.Number, Errors: errs}},
		))
		return
	}

	updated, err := h.store.Update(id, draft)
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.log.Info("Slot updated",
		zap.String(utils.FieldSlotID, updated.ID),
		zap.String(utils.FieldSlotNumber, updated.Number))
	c.JSON(http.StatusOK, updated)
}

func authMiddleware(expectedToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		expectedAuth := fmt.Sprintf("Bearer %s", expectedToken)
		if authHeader != expectedAuth {
			utils.Logger.Warn("Unauthorized access attempt",
				zap.String(utils.FieldPath, c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MessageInvalidToken})
			return
		}
		c.Next()
	}
}

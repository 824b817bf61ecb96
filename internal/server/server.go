// Package server implements a local development backend for the slots API.
package server

import (
	"github.com/anmicius0/parking-slot-manager/internal/config"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the Gin router serving the slots API under APIPrefix.
// Routes other than health require a bearer token when cfg.APIToken is set.
func NewRouter(cfg *config.Config, store *SlotStore) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), corsMiddleware(cfg.DevServer.CORSOrigins))

	handler := newHandler(store)

	api := router.Group(APIPrefix)
	api.GET(HealthEndpoint, handler.health)

	slots := api.Group("")
	slots.Use(rateLimitMiddleware(cfg.DevServer.RateLimit))
	if cfg.APIToken != "" {
		slots.Use(authMiddleware(cfg.APIToken))
	}
	slots.POST(SlotsPath, handler.createSlot)
	slots.POST(BulkSlotsPath, handler.createSlots)
	slots.GET(SlotsPath, handler.listSlots)
	slots.GET(SlotsPath+"/:id", handler.getSlot)
	slots.PUT(SlotsPath+"/:id", handler.updateSlot)

	return router
}

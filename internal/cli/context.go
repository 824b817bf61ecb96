// Package cli holds the slotctl commands.
package cli

import (
	"io"

	"github.com/anmicius0/parking-slot-manager/internal/client"
	"github.com/anmicius0/parking-slot-manager/internal/config"
	"github.com/anmicius0/parking-slot-manager/internal/service"
	"github.com/anmicius0/parking-slot-manager/internal/tui"
)

// Context carries the dependencies every command runs with.
type Context struct {
	Config  *config.Config
	Slots   client.SlotClient
	Backend client.Backend
	Loading *service.LoadingFlag
	Dialogs *tui.Dialogs
	Styles  tui.Styles
	Out     io.Writer
}

// NewContext wires the API client, backend adapter and dialogs for cfg.
func NewContext(cfg *config.Config, out io.Writer) *Context {
	styles := tui.NewStyles(cfg.Theme)
	slots := client.NewSlotClient(cfg.BaseURL(), cfg.APIToken, cfg.RequestTimeout)
	return &Context{
		Config:  cfg,
		Slots:   slots,
		Backend: client.NewSlotBackend(slots, tui.NewNotifier(out, styles)),
		Loading: service.NewLoadingFlag(),
		Dialogs: tui.NewDialogs(styles, out),
		Styles:  styles,
		Out:     out,
	}
}

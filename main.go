// main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/anmicius0/parking-slot-manager/internal/cli"
	"github.com/anmicius0/parking-slot-manager/internal/config"
	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"go.uber.org/zap"
)

var CLI struct {
	Version kong.VersionFlag
	Verbose bool   `help:"Also log to stderr." short:"v"`
	Env     string `help:"Configuration file." default:"config/.env" type:"path"`

	Create     cli.CreateCmd     `cmd:"" help:"Create a parking slot."`
	CreateMany cli.CreateManyCmd `cmd:"" name:"create-many" help:"Create several parking slots at once."`
	Edit       cli.EditCmd       `cmd:"" help:"Edit a parking slot."`
	List       cli.ListCmd       `cmd:"" help:"List parking slots."`
	Serve      cli.ServeCmd      `cmd:"" help:"Run the local development backend."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&CLI,
		kong.Name("slotctl"),
		kong.Description("Manage parking slots"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": "v0.1.0"},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	// Initialize logging first
	if err := utils.Init(CLI.Verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer utils.Sync()

	appConfig, err := config.LoadFile(CLI.Env)
	if err != nil {
		utils.Logger.Error("Failed to load configuration", zap.Error(err))
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	utils.Logger.Info("Configuration loaded",
		zap.String(utils.FieldEnv, appConfig.Env),
		zap.String(utils.FieldURL, appConfig.BaseURL()))

	if err := kctx.Run(cli.NewContext(appConfig, os.Stdout)); err != nil {
		utils.Logger.Error("Command failed", zap.String("command", kctx.Command()), zap.Error(err))
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		utils.Sync()
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/labmon/internal/events"
	"github.com/justinpbarnett/labmon/internal/logger"
	"github.com/justinpbarnett/labmon/internal/poller"
	"github.com/justinpbarnett/labmon/internal/ui"
	"github.com/justinpbarnett/labmon/internal/ui/panels"
	"github.com/spf13/cobra"
)

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Log.Level, cfg.LogFile())
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	client := events.NewClient(cfg.Backend.URL, panels.Version)
	defer client.Close()

	p := poller.New(client, poller.WithLogger(log))
	defer p.Stop()

	log.Infow("labmon starting", "version", panels.Version, "url", client.URL())

	prog := tea.NewProgram(ui.NewApp(ctx, cfg, p, log), tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		prog.Quit()
	}()

	if _, err := prog.Run(); err != nil {
		log.Errorw("dashboard exited with error", "error", err)
		return fmt.Errorf("dashboard: %w", err)
	}
	log.Infow("labmon stopped")
	return nil
}

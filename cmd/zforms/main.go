package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zforms/internal/cli"
	"github.com/zarlcorp/zforms/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zforms"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx, os.Args[1])
		_ = app.Close()
		return
	}

	if err := runTUI(); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zforms %s\n", version)
	case "login":
		cli.CmdLogin()
	case "logout":
		cli.CmdLogout()
	case "whoami":
		cli.CmdWhoami()
	case "list":
		cli.CmdList(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "zforms: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI() error {
	authSvc, formSvc, err := cli.OpenServices(cli.DataDir())
	if err != nil {
		return err
	}

	m := tui.New(version, authSvc, formSvc)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

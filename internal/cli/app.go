// Package cli is the command-line front end for the spending reports.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dafibh/fortuna/fortuna-reports/internal/service"
	"github.com/spf13/cobra"
)

// Services are the report services a command runs against
type Services struct {
	Reports *service.ReportService
	Months  *service.MonthService
}

// Connector opens the data source and returns the services plus a cleanup func
type Connector func(ctx context.Context) (*Services, func(), error)

// App represents the command-line interface application
type App struct {
	rootCmd *cobra.Command
	connect Connector
	out     io.Writer
}

// NewApp creates the CLI application
func NewApp(version string, connect Connector) *App {
	app := &App{
		connect: connect,
		out:     os.Stdout,
	}

	rootCmd := &cobra.Command{
		Use:           "reports",
		Short:         "Fortuna spending reports",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(`{{printf "Fortuna reports version: %s\n" .Version}}`)

	rootCmd.AddCommand(app.byCategoriesCommand(), app.monthsCommand())

	app.rootCmd = rootCmd
	return app
}

// SetOutput redirects command output
func (app *App) SetOutput(w io.Writer) {
	app.out = w
	app.rootCmd.SetOut(w)
	app.rootCmd.SetErr(w)
}

// SetArgs overrides os.Args, for tests
func (app *App) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// Execute runs the CLI application
func (app *App) Execute() error {
	return app.rootCmd.Execute()
}

// withServices connects, runs fn and releases the connection
func (app *App) withServices(ctx context.Context, fn func(*Services) error) error {
	services, cleanup, err := app.connect(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer cleanup()
	return fn(services)
}

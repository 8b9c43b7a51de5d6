package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	_ "time/tzdata"

	"missionctl/internal/bootstrap"
	memorydto "missionctl/internal/modules/memory/dto"
	"missionctl/internal/platform/config"
	"missionctl/internal/platform/logger"
	"missionctl/internal/ui/theme"
)

const shutdownTimeout = 5 * time.Second

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var overrides config.Overrides

	root := &cobra.Command{
		Use:           "missionctl",
		Short:         "Personal mission control over a markdown workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&overrides.ConfigFile, "config", "", "config file (default ./missionctl.yaml)")
	root.PersistentFlags().StringVar(&overrides.Workspace, "workspace", "", "markdown workspace root")
	root.PersistentFlags().StringVar(&overrides.DBPath, "db", "", "sqlite database path")
	root.PersistentFlags().StringVar(&overrides.Addr, "addr", "", "http listen address")

	root.AddCommand(newServeCmd(&overrides))
	root.AddCommand(newSyncCmd(&overrides))
	root.AddCommand(newStatusCmd(&overrides))
	root.AddCommand(newSearchCmd(&overrides))
	root.AddCommand(newTUICmd(&overrides))
	return root
}

func loadApp(ctx context.Context, o config.Overrides) (*bootstrap.App, error) {
	cfg, err := config.Load(o)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, logger.New(cfg.Log))
}

func newServeCmd(o *config.Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := loadApp(ctx, *o)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if app.Config.Server.SyncOnStart {
				if err := app.Sync(ctx); err != nil {
					app.Log.Warn("sync on start failed", "error", err)
				}
			}

			srv := &http.Server{
				Addr:              app.Config.Server.Addr,
				Handler:           app.Router,
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				app.Log.Info("listening", "addr", srv.Addr, "workspace", app.Workspace.Root())
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			app.Log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func newSyncCmd(o *config.Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Copy goals and the job pipeline from markdown into the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *o)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			goals, err := app.Goals.Sync(cmd.Context())
			if err != nil {
				return err
			}
			jobs, err := app.Jobs.Sync(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "synced %d goals, %d jobs\n", goals.Goals, jobs.Jobs)
			return nil
		},
	}
}

func newStatusCmd(o *config.Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the overview and upcoming deadlines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *o)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			ov, err := app.Overview.Overview(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, theme.Title.Render("missionctl")+" "+theme.Muted.Render(ov.GeneratedAt))
			_, _ = fmt.Fprintf(out, "goals     %d%% (%d/%d)  [%s]\n", ov.Goals.Progress, ov.Goals.Done, ov.Goals.Objectives, ov.Goals.Source)
			_, _ = fmt.Fprintf(out, "pipeline  %d active, %d interviewing, %d offers  [%s]\n", ov.Jobs.Active, ov.Jobs.Interviews, ov.Jobs.Offers, ov.Jobs.Source)
			_, _ = fmt.Fprintf(out, "content   %d scheduled, %d published  [%s]\n", ov.Content.Scheduled, ov.Content.Published, ov.Content.Source)
			_, _ = fmt.Fprintf(out, "tasks     %d open, %d blocked  [%s]\n", ov.Tasks.Open, ov.Tasks.Blocked, ov.Tasks.Source)

			for _, a := range app.Alerts.Alerts(cmd.Context()).Alerts {
				style := theme.Severity(a.Severity)
				_, _ = fmt.Fprintf(out, "%s %s  %s\n", style.Render(fmt.Sprintf("%-6s", a.Severity)), style.Render(a.Deadline), a.Text)
			}
			return nil
		},
	}
}

func newSearchCmd(o *config.Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search workspace markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), *o)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			res, err := app.Memory.Search(cmd.Context(), memorydto.SearchInput{Query: args[0]})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(res.Results) == 0 {
				_, _ = fmt.Fprintln(out, "no matches")
				return nil
			}
			for _, file := range res.Results {
				_, _ = fmt.Fprintln(out, theme.Title.Render(file.File))
				for _, m := range file.Matches {
					_, _ = fmt.Fprintf(out, "  %d: %s\n", m.Line, m.Text)
				}
			}
			if res.Truncated {
				_, _ = fmt.Fprintln(out, theme.Muted.Render(fmt.Sprintf("showing first %d matches", res.TotalMatches)))
			}
			return nil
		},
	}
}

func newTUICmd(o *config.Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *o)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/tagger-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagger-backend/internal/app"
	"github.com/heartmarshall/tagger-backend/internal/config"
	"github.com/heartmarshall/tagger-backend/internal/metrics"
)

// runtime is the state shared by subcommands, opened before each run.
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	repos  *app.Repos
	svcs   *app.Services
}

func rootCommand() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:          "taggerctl",
		Short:        "Sentence tagger operations CLI",
		SilenceUsage: true,
	}

	versionCmd := versionCommand()
	root.AddCommand(
		migrateCommand(rt),
		reportCommand(rt),
		importCommand(rt),
		userCommand(rt),
		operatorCommand(rt),
		versionCmd,
	)

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		return rt.open(cmd)
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		rt.close()
	}

	return root
}

func (rt *runtime) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	rt.cfg = cfg
	rt.logger = app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	rt.pool = pool

	m, err := metrics.New()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	rt.repos = app.NewRepos(pool)
	rt.svcs = app.NewServices(rt.logger, cfg, rt.repos, m)
	return nil
}

func (rt *runtime) close() {
	if rt.pool != nil {
		rt.pool.Close()
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}

func migrateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.Migrate(cmd.Context(), rt.pool, rt.logger)
		},
	}
}

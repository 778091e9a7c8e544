// BioTriage API server: drug-repurposing triage over a binding-affinity GNN,
// a cheminformatics sidecar, and an LLM narrative engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/BioTriage/internal/config"
	"github.com/turtacn/BioTriage/internal/infrastructure/catalog"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "biotriage",
		Short:         "BioTriage — AI-driven drug repurposing triage service",
		Long:          "BioTriage scores drug candidates against disease targets with a\nbinding-affinity GNN, enriches active hits with ADMET and pharmacophore\ndata, and generates scientific narratives for review.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file")

	root.AddCommand(newServeCommand(&configPath))
	root.AddCommand(newMigrateCommand(&configPath))
	return root
}

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending drug catalog schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			dsn := catalog.BuildDSN(postgresConfig(cfg))
			path := cfg.Database.MigrationPath
			if path == "" {
				path = "file://migrations"
			}
			if err := catalog.RunMigrations(dsn, path); err != nil {
				return err
			}

			ver, dirty, err := catalog.MigrationStatus(dsn, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (version=%d dirty=%v)\n", ver, dirty)
			return nil
		},
	}
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadFromEnv()
}

func postgresConfig(cfg *config.Config) catalog.PostgresConfig {
	return catalog.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Database:        cfg.Database.DBName,
		Username:        cfg.Database.User,
		Password:        cfg.Database.Password,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
}

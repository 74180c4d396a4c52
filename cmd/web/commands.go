package main

import (
	"fmt"
	"os"

	"jobboard_backend/database"
	"jobboard_backend/internal/app"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

const configFlag = "config"

// newConfigFlags - --config объявлен один раз на корне и наследуется подкомандами
func newConfigFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		configFlag: &cobraflags.StringFlag{
			Name:       configFlag,
			Value:      "",
			Usage:      "Path to YAML config (defaults to $CONFIG_PATH or config/config.yaml)",
			Persistent: true,
		},
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jobboard",
		Short:         "Job board backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cobraflags.RegisterMap(rootCmd, newConfigFlags())
	rootCmd.AddCommand(newServeCommand(), newMigrateCommand(), newSeedAdminCommand())
	return rootCmd
}

// configPath - значение --config той команды, которая выполняется
func configPath(cmd *cobra.Command) string {
	if f := cmd.Flag(configFlag); f != nil {
		return f.Value.String()
	}
	return ""
}

// loadConfig читает конфиг и инициализирует логгер
func loadConfig(cmd *cobra.Command) *config.Config {
	if path := configPath(cmd); path != "" {
		os.Setenv("CONFIG_PATH", path)
	}
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	return cfg
}

func newServeCommand() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(loadConfig(cmd), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Run schema migration before serving")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and seed user roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.Connect(loadConfig(cmd))
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			logger.Info("Database migrated")
			return nil
		},
	}
}

func newSeedAdminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the first administrator from FIRST_ADMIN_* settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			db, err := app.Connect(cfg)
			if err != nil {
				return err
			}
			if err := app.SeedFirstAdmin(db, cfg); err != nil {
				return fmt.Errorf("seed admin: %w", err)
			}
			return nil
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"mycolab/app"
	"mycolab/config"
	"mycolab/database"
	"mycolab/pkg/lifecycle"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mycolabctl",
		Short:         "Maintenance tasks for a MycoLab database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("db", "", "database path (defaults to DB_PATH)")

	root.AddCommand(newMigrateCommand())
	root.AddCommand(newExportCommand())
	root.AddCommand(newFocusCommand())
	root.AddCommand(newAdminCommand())
	return root
}

func openDB(cmd *cobra.Command) (config.AppConfig, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	db, err := database.OpenSQLite(cfg.DBPath)
	return cfg, db, err
}

// openApp wires the full application without starting the HTTP server.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, db, err := openDB(cmd)
	if err != nil {
		return nil, err
	}
	d, err := lifecycle.LoadDurations(cfg.StageConfigPath, cfg.StageAdjustPath)
	if err != nil {
		return nil, err
	}
	return app.Build(cfg, db, d), nil
}

func closeApp(a *app.App) {
	a.Mail.Wait()
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

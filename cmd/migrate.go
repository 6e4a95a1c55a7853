package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/narasux/chemlab/pkg/envs"
	"github.com/narasux/chemlab/pkg/infras/database"
	"github.com/narasux/chemlab/pkg/logging"
	// load migration package to register migrations
	_ "github.com/narasux/chemlab/pkg/migration"
	"github.com/narasux/chemlab/pkg/version"
)

// NewMigrateCmd ...
func NewMigrateCmd() *cobra.Command {
	var migrationID string

	migrateCmd := cobra.Command{
		Use:   "migrate",
		Short: "Apply migrations to the database tables.",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			logging.InitLogger()
			if envs.MysqlHost == "" {
				log.Fatal("MYSQL_HOST is required to run migrations")
			}
			if err := database.InitDBClient(ctx); err != nil {
				log.Fatalf("failed to init database: %s", err)
			}

			if err := database.RunMigrate(ctx, migrationID); err != nil {
				log.Fatalf("failed to run migrate: %s", err)
			}
			dbVersion, err := database.Version(ctx)
			if err != nil {
				log.Fatalf("failed to get database version: %s", err)
			}
			logging.GetSystemLogger().Infof("migrate success %s\nDatabaseVersion: %s", version.GetVersion(), dbVersion)
		},
	}

	migrateCmd.Flags().StringVar(&migrationID, "migration", "", "migration to apply, blank means latest version")

	return &migrateCmd
}

func init() {
	rootCmd.AddCommand(NewMigrateCmd())
}

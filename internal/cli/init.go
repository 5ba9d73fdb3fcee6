package cli

import (
	"fmt"
	"os"

	"github.com/example/staffdir/internal/config"
	"github.com/example/staffdir/internal/db"
	"github.com/spf13/cobra"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the staffdir database",
		Long:  `Initialize the employee database with the required schema and write a config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			driver, _ := cmd.Flags().GetString("driver")

			cfg := &config.Config{Driver: driver, DatabasePath: dbPath}
			resolvedDriver, dsn, err := cfg.Resolve()
			if err != nil {
				return err
			}

			factory, err := db.NewFactory(resolvedDriver, dsn)
			if err != nil {
				return err
			}
			defer factory.Close()

			fmt.Printf("Initializing staffdir database at %s\n", dsn)
			if err := factory.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("✓ Database initialized successfully")

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			if err := config.SaveConfig(cwd, &config.Config{Driver: resolvedDriver, DatabasePath: dsn}); err != nil {
				return err
			}
			fmt.Println("✓ Config written to .staffdir/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  staffdir employee add Davolio Nancy --title \"Sales Representative\"")
			fmt.Println("  staffdir employee list")

			return nil
		},
	}

	cmd.Flags().String("db", "", "Path to the database file (defaults to ~/.staffdir/staffdir.db)")
	cmd.Flags().String("driver", config.DefaultDriver, "database/sql driver name")

	return cmd
}

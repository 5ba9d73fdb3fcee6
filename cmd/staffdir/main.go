package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/staffdir/internal/cli"
	"github.com/example/staffdir/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "staffdir",
		Short:   "staffdir - employee directory on SQLite",
		Version: version.String(),
		Long: `staffdir maintains a single-table employee directory in SQLite.
It covers the full record lifecycle: add, list, get, update, and remove.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.EmployeeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package cli contains the staffdir cobra commands.
package cli

import (
	"fmt"
	"os"

	"github.com/example/staffdir/internal/adapters/sqlite"
	"github.com/example/staffdir/internal/config"
	"github.com/example/staffdir/internal/db"
)

// loadConfig reads the config from the working directory, falling back
// to defaults when no config file exists.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		// No config file is fine; defaults apply.
		return &config.Config{}, nil
	}
	return cfg, nil
}

// openRepository wires a repository from the resolved config. The
// caller must Close the returned factory.
func openRepository() (*db.Factory, *sqlite.EmployeeRepository, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	driver, dsn, err := cfg.Resolve()
	if err != nil {
		return nil, nil, err
	}

	factory, err := db.NewFactory(driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	return factory, sqlite.NewEmployeeRepository(factory), nil
}

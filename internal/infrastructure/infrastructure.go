// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every module requires: lifecycle coordination,
// logging, and the validated route table.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/checkout-shell/internal/config"
	"github.com/JaimeStill/checkout-shell/internal/views"
	"github.com/JaimeStill/checkout-shell/pkg/lifecycle"
	"github.com/JaimeStill/checkout-shell/pkg/logging"
	"github.com/JaimeStill/checkout-shell/pkg/navigation"
)

// Infrastructure holds the core systems shared by the page shell and the API.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Table     *navigation.Table
}

// New creates an Infrastructure from the application configuration. An
// invalid route table is returned as an error wrapping
// *navigation.ConfigurationError.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := logging.New(&cfg.Logging)

	table, err := views.NewTable()
	if err != nil {
		return nil, fmt.Errorf("route table init failed: %w", err)
	}

	logger.Debug("route table built", "routes", table.Len())

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Table:     table,
	}, nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/glossary/pkg/api"
	"tableflip.dev/glossary/pkg/catalog"
	"tableflip.dev/glossary/pkg/config"
	"tableflip.dev/glossary/pkg/logging"
)

// setup resolves the configuration and builds the shared API client.
func setup(cmd *cobra.Command, log *logging.Logger) (*config.Config, *api.Client, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	if log == nil {
		log = logging.Std(cfg.Debug)
	}
	client, err := newClient(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

func newClient(cfg *config.Config, log *logging.Logger) (*api.Client, error) {
	if cfg.File != "" {
		log.Debugf("config: using %s", cfg.File)
	}
	return api.New(cfg.BaseURL,
		api.WithTimeout(cfg.Timeout),
		api.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
		api.WithLogger(log),
		api.WithUserAgent(fmt.Sprintf("glossary/%s", version)),
	)
}

func catalogService(cmd *cobra.Command) (*catalog.Service, error) {
	cfg, client, err := setup(cmd, nil)
	if err != nil {
		return nil, err
	}
	return catalog.NewService(client, cfg.PageSize, cfg.AuthorPageSize), nil
}

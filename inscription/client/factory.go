package client

import (
	"fmt"
	"log"

	"pdao/config"
	"pdao/inscription/client/dryrun"
	"pdao/inscription/client/unisat"
)

// Mode selects between simulated and live inscription submission.
type Mode string

const (
	ModeDryRun Mode = "dryrun"
	ModeLive   Mode = "live"
)

// NewClient creates an inscription client for the given mode. Live mode
// resolves the API key up front so a missing key fails before any network
// call is attempted.
func NewClient(mode Mode, cfg *config.BotConfig, logger *log.Logger) (Client, error) {
	switch mode {
	case ModeDryRun, "":
		return dryrun.NewClient(logger), nil
	case ModeLive:
		apiKey, err := config.APIKey()
		if err != nil {
			return nil, err
		}
		return unisat.NewClient(cfg, apiKey, logger)
	default:
		return nil, fmt.Errorf("unsupported inscription mode: %s", mode)
	}
}

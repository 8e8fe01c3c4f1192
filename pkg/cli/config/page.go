package config

import (
	"time"

	"github.com/drifty-web/releasepage/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Page holds download page configuration
type Page struct {
	Revalidate time.Duration
}

// Flags returns CLI flags for page configuration
func (c *Page) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "revalidate",
			Usage:       "Freshness hint sent to caches as Cache-Control max-age (0 sends no-cache)",
			Value:       types.DefaultRevalidate,
			Destination: &c.Revalidate,
			Sources:     cli.EnvVars("RELEASEPAGE_REVALIDATE"),
		},
	}
}

// Validate rejects negative durations
func (c *Page) Validate() error {
	if c.Revalidate < 0 {
		return goerr.New("revalidate must not be negative", goerr.V("revalidate", c.Revalidate))
	}
	return nil
}

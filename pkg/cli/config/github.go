package config

import (
	"time"

	"github.com/drifty-web/releasepage/pkg/domain/interfaces"
	githubinfra "github.com/drifty-web/releasepage/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds configuration of the outbound GitHub releases call
type GitHub struct {
	Timeout time.Duration
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of the GitHub releases request (0 disables it)",
			Value:       0,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("RELEASEPAGE_GITHUB_TIMEOUT"),
		},
	}
}

// NewClient builds the releases client
func (c *GitHub) NewClient() interfaces.ReleaseClient {
	return githubinfra.NewClient(githubinfra.WithTimeout(c.Timeout))
}

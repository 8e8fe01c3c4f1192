package cli_test

import (
	"context"
	"testing"

	"github.com/drifty-web/releasepage/pkg/cli"
	"github.com/m-mizutani/gt"
)

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{"releasepage", "--log-level", "verbose", "render"})
	gt.Error(t, err)
}

package cli

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/drifty-web/releasepage/pkg/cli/config"
	"github.com/drifty-web/releasepage/pkg/domain/interfaces"
	"github.com/drifty-web/releasepage/pkg/usecase"
	"github.com/drifty-web/releasepage/pkg/view"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		githubCfg config.GitHub
		output    string
	)

	flags := append(githubCfg.Flags(),
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Write the page to this file instead of stdout",
			Destination: &output,
			Sources:     cli.EnvVars("RELEASEPAGE_OUTPUT"),
		},
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Fetch releases once and write the download page as static HTML",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			pageUC := usecase.NewDownloadPage(githubCfg.NewClient())
			return renderPage(ctx, pageUC, output, os.Stdout, os.Stderr)
		},
	}
}

// renderPage renders one page. The HTML goes to the file at path, or to stdout
// when path is empty; a status line goes to status.
func renderPage(ctx context.Context, pageUC interfaces.DownloadPageUseCase, path string, stdout, status io.Writer) error {
	renderer, err := view.New()
	if err != nil {
		return goerr.Wrap(err, "failed to create page renderer")
	}

	page, err := pageUC.Render(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, page); err != nil {
		return goerr.Wrap(err, "failed to render download page")
	}

	releaseCount := 0
	for _, s := range page.Sections {
		if s.Releases != nil {
			releaseCount += s.Releases.Len()
		}
	}

	if path == "" {
		if _, err := buf.WriteTo(stdout); err != nil {
			return goerr.Wrap(err, "failed to write page to stdout")
		}
		return nil
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return goerr.Wrap(err, "failed to write page", goerr.V("path", path))
	}

	// The page is already on disk; a lost status line is not a failure
	_, _ = color.New(color.FgGreen).Fprintf(status, "✓ rendered %d releases to %s\n", releaseCount, path)
	return nil
}

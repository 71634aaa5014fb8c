package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"pkgquery/internal/client"
	"pkgquery/internal/config"
	"pkgquery/internal/prompt"
	"pkgquery/internal/query"
	"pkgquery/internal/render"
)

// runRequest walks through prompt, build, confirm, send and print. It
// reports whether a request was sent; a declined confirmation is not an
// error.
func runRequest(ctx context.Context, cfg *config.Config, p prompt.Prompter, out io.Writer, logger *slog.Logger) (bool, error) {
	printer := render.NewPrinter(out)
	printer.Banner()

	sel, err := prompt.Collect(p, printer.Separator)
	if err != nil {
		if errors.Is(err, prompt.ErrNoPlatforms) {
			printer.Error("You must select at least one platform")
		}
		return false, err
	}

	url := query.BuildURL(cfg.BaseURL, sel)
	req := client.NewPackageRequest(url, sel.Token, cfg.Host)
	logger.Debug("request built",
		"url", url,
		"authorization", client.RedactToken(sel.Token),
		"platforms", sel.Platforms,
		"config_type", sel.ConfigType.String(),
		"search_package", sel.SearchPackage,
	)

	printer.Separator()
	printer.Summary(req, sel, cfg.Insecure)
	printer.Separator()

	proceed, err := p.Confirm("Do you want to send this request?", false)
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !proceed {
		printer.Line("Request cancelled")
		logger.Info("request cancelled", "url", url)
		return false, nil
	}

	printer.Line(fmt.Sprintf("Sending %s request...\n", req.Method))

	httpClient := client.NewClient(cfg.Insecure)
	defer httpClient.Close()

	resp, err := httpClient.Execute(ctx, req)
	if err != nil {
		logger.Error("request failed", "url", url, "error", err)
		return false, err
	}
	logger.Info("response received", "url", url, "status", resp.StatusCode, "duration", resp.Duration, "bytes", len(resp.Body))

	printer.Response(resp)
	return true, nil
}

// waitForEnter blocks until a line is read from in. It returns at once
// when in is not a terminal.
func waitForEnter(in *os.File, out io.Writer) {
	if !term.IsTerminal(int(in.Fd())) {
		return
	}
	fmt.Fprintln(out, "\nPress Enter to exit...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}

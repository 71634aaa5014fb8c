package commands

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pkgquery/internal/config"
	"pkgquery/internal/prompt"
)

var initFile string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write API_HOST and API_URL to a .env file",
	Long:  `Ask for the endpoint URL and Host header and save them as API_URL and API_HOST in a .env file in the current directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(newPrompter(cmd), initFile, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initFile, "file", config.DotEnvFile, "file to write")
}

func runInit(p prompt.Prompter, filename string, out io.Writer) error {
	fmt.Fprintln(out, "Initializing pkgquery configuration...")

	baseURL, err := p.Input("API URL", false)
	if err != nil {
		return fmt.Errorf("failed to read API URL: %w", err)
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return fmt.Errorf("%w: %s", config.ErrMissing, config.EnvURL)
	}

	host, err := p.Input("API host (press Enter to use the URL host)", true)
	if err != nil {
		return fmt.Errorf("failed to read API host: %w", err)
	}
	host = strings.TrimSpace(host)
	if host == "" {
		if u, err := url.Parse(baseURL); err == nil {
			host = u.Host
		}
	}
	if host == "" {
		return fmt.Errorf("%w: %s", config.ErrMissing, config.EnvHost)
	}

	if _, err := os.Stat(filename); err == nil {
		overwrite, err := p.Confirm(fmt.Sprintf("%s exists. Overwrite?", filename), false)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !overwrite {
			fmt.Fprintln(out, "Nothing written")
			return nil
		}
	}

	if err := config.WriteDotEnv(filename, host, baseURL); err != nil {
		return err
	}

	fmt.Fprintf(out, "Configuration saved to %s\n", filename)
	return nil
}

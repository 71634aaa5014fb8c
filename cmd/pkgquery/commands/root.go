package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgquery/internal/config"
	"pkgquery/internal/logging"
	"pkgquery/internal/prompt"
)

var (
	cfgFile  string
	insecure bool
	noPause  bool
	verbose  bool
)

// newPrompter builds the interactive prompter. Tests replace it.
var newPrompter = func(cmd *cobra.Command) prompt.Prompter {
	return prompt.NewSurvey(os.Stdin, os.Stdout, cmd.ErrOrStderr())
}

var rootCmd = &cobra.Command{
	Use:   "pkgquery",
	Short: "pkgquery builds and sends a package configuration query.",
	Long: `pkgquery asks for an authorization token, target platforms, a config type and an
optional search term, shows the GET request it built and sends it once you confirm.

The endpoint comes from API_URL and the Host header from API_HOST, read from the
environment, a .env file in the current directory, or --config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("insecure") {
			cfg.Insecure = insecure
		}

		logger, closer, err := logging.Init(cfg.Log, verbose, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer closer.Close()

		logger.Debug("config loaded", "host", cfg.Host, "base_url", cfg.BaseURL, "insecure", cfg.Insecure)

		sent, err := runRequest(cmd.Context(), cfg, newPrompter(cmd), cmd.OutOrStdout(), logger)
		if err != nil {
			return err
		}
		if sent && !noPause {
			waitForEnter(os.Stdin, cmd.OutOrStdout())
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if prompt.IsInterrupt(err) {
			os.Exit(130)
		}
		// The empty platform selection is already reported inline.
		if !errors.Is(err, prompt.ErrNoPlatforms) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pkgquery.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.Flags().BoolVarP(&insecure, "insecure", "k", true, "Skip TLS certificate verification (overrides API_INSECURE)")
	rootCmd.Flags().BoolVar(&noPause, "no-pause", false, "Exit without waiting for Enter after the response")
}

func initConfig() {
	// .env only fills variables that are not already set.
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in current directory with name "pkgquery" (without extension).
		viper.AddConfigPath(".")
		viper.SetConfigName("pkgquery")
	}

	config.Bind(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config: %v\n", err)
		}
	}
}

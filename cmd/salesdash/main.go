package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/salesdash/internal/cli"
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/config"
	"github.com/Veraticus/salesdash/internal/dashboard"
	"github.com/Veraticus/salesdash/internal/salesapi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// logToFile marks commands that own the terminal and must not log to it.
const logToFile = "logToFile"

// app carries state shared by every command of one invocation.
type app struct {
	v         *viper.Viper
	logCloser io.Closer
	cfgFile   string
	envFile   string
	cfg       config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "salesdash",
		Short: "📊 Sales transactions dashboard",
		Long: `salesdash: a terminal dashboard for a sales transactions service.

Browse one month of transactions page by page, search them, and see the
month's totals and an items-per-category bar chart. Snapshots and
spreadsheet/PDF exports reuse the same queries.`,
		Annotations:        map[string]string{logToFile: "true"},
		PersistentPreRunE:  a.initConfig,
		PersistentPostRunE: a.closeLog,
		RunE:               a.runDashboard,
		SilenceUsage:       true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/salesdash/config.yaml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("base-url", salesapi.DefaultBaseURL, "sales service base URL")
	flags.String("month", "03", "month to show (1-12 or a month name)")
	flags.String("search", "", "initial search term")

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("api.base_url", flags.Lookup("base-url"))
	_ = a.v.BindPFlag("dashboard.month", flags.Lookup("month"))
	_ = a.v.BindPFlag("dashboard.search", flags.Lookup("search"))

	a.addDashboardFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(a.dashboardCmd())
	rootCmd.AddCommand(a.snapshotCmd())
	rootCmd.AddCommand(a.exportCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received termination signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError reports err once. A UserError's message already leads its
// Error text.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, cli.FormatError(err.Error()))
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}

	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(config.ExpandPath(a.cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		a.v.AddConfigPath(fmt.Sprintf("%s/.config/salesdash", home))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables
	a.v.SetEnvPrefix("SALESDASH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Flags defined on more than one command bind to whichever one runs.
	if f := cmd.Flags().Lookup("theme"); f != nil {
		_ = a.v.BindPFlag("dashboard.theme", f)
	}
	if f := cmd.Flags().Lookup("log-file"); f != nil {
		_ = a.v.BindPFlag("logging.file", f)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Set up logging
	logFile := ""
	if cmd.Annotations[logToFile] == "true" {
		logFile = cfg.Logging.File
	}
	closer, err := common.SetupLogger(cfg.Logging.Level, cfg.Logging.Format, logFile)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.logCloser = closer

	slog.Debug("Configuration loaded",
		"config_file", a.v.ConfigFileUsed(),
		"base_url", cfg.API.BaseURL,
		"month", cfg.Dashboard.Month.Code())
	return nil
}

func (a *app) closeLog(_ *cobra.Command, _ []string) error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}

// newFetcher builds the sales client and the fetcher every command uses.
func (a *app) newFetcher() (*salesapi.Client, *dashboard.Fetcher, error) {
	opts := append(a.cfg.API.ClientOptions(), salesapi.WithLogger(slog.Default()))
	client, err := salesapi.NewClient(a.cfg.API.BaseURL, opts...)
	if err != nil {
		return nil, nil, common.NewUserError("Check api.base_url in your configuration", err)
	}
	return client, dashboard.NewFetcher(client, slog.Default(), a.cfg.API.Timeout), nil
}

// filter returns the configured starting filter on page.
func (a *app) filter(page int) dashboard.Filter {
	return dashboard.Filter{
		Month:  a.cfg.Dashboard.Month,
		Search: a.cfg.Dashboard.Search,
		Page:   max(page, 1),
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "salesdash version %s\n", version)
		},
	}
}

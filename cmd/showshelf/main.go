package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/justchokingaround/showshelf/internal/catalog"
	"github.com/justchokingaround/showshelf/internal/config"
	"github.com/justchokingaround/showshelf/internal/database"
	"github.com/justchokingaround/showshelf/internal/remote/tvmaze"
	"github.com/justchokingaround/showshelf/internal/tui"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	cfgFile   string
	logLevel  string
	noColor   bool
	debugMode bool
	ephemeral bool

	// Global config and services
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
	kv     catalog.KV
	source *tvmaze.Client
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "showshelf",
	Short: "Browse the TVMaze show catalog from the terminal",
	Long: `showshelf searches the TVMaze catalog, filters and pages through the
results, shows per-show details with episode listings, and keeps a
watchlist that survives restarts.

Run without a subcommand to open the interactive browser.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for commands that only deal with the config file
		if cmd.Name() == "version" || (cmd.HasParent() && cmd.Parent().Name() == "config" && cmd.Name() != "show") {
			return nil
		}

		if err := config.InitializeDirs(); err != nil {
			return fmt.Errorf("failed to initialize directories: %w", err)
		}

		var err error
		var v *viper.Viper
		cfg, v, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if debugMode {
			cfg.Advanced.Debug = true
			if logLevel == "" {
				cfg.Logging.Level = "debug"
			}
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if noColor {
			cfg.Logging.Color = false
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		logger, err = config.InitLogger(&cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if ephemeral {
			logger.Debug("using in-memory storage")
			kv = catalog.NewMemoryKV()
		} else {
			db, err = database.Open(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			kv = database.NewSettingsStore(db)
		}

		source = tvmaze.NewClient(cfg, logger)

		// Hot reload of the log level; other settings apply on next start
		if v.ConfigFileUsed() != "" {
			v.WatchConfig()
			v.OnConfigChange(func(e fsnotify.Event) {
				logger.Info("config file changed", "name", e.Name)
				var reloaded config.Config
				if err := v.Unmarshal(&reloaded); err != nil {
					logger.Error("failed to reload config", "error", err)
					return
				}
				if logLevel == "" && !debugMode {
					config.SetLogLevel(reloaded.Logging.Level)
					logger.Info("log level reloaded", "level", reloaded.Logging.Level)
				}
			})
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("showshelf starting", "version", version)

		return tui.Start(cmd.Context(), newController(cmd.Context(), nil), logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/showshelf/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug mode (verbose HTTP logging)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the query and watchlist in memory only")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(watchlistCmd)
}

// newController builds the catalog runtime over the configured source and store.
// A nil runner starts fetches on their own goroutines.
func newController(ctx context.Context, runner func(func())) *catalog.Controller {
	return catalog.NewController(catalog.Options{
		Context:      ctx,
		Source:       source,
		KV:           kv,
		DefaultQuery: cfg.UI.DefaultQuery,
		PageSize:     cfg.UI.PageSize,
		DiscardStale: cfg.Advanced.DiscardStaleFetches,
		Logger:       logger,
		Runner:       runner,
	})
}

// runInline runs fetch jobs on the calling goroutine so one-shot commands
// see their results as soon as Dispatch returns
func runInline(f func()) { f() }

// versionCmd displays version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("showshelf version %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
	},
}

// configCmd handles configuration operations
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configFilePath()

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s", configPath)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := config.SaveDefaultConfig(configPath); err != nil {
			return fmt.Errorf("failed to save default configuration: %w", err)
		}

		fmt.Printf("Default configuration generated successfully at: %s\n", configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Printf("# %s\n%s", configFilePath(), out)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Display configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(configFilePath())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func configFilePath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(config.GetConfigDir(), "config.yaml")
}

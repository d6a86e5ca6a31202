package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/inovacc/degreeclass/internal/application"
	"github.com/inovacc/degreeclass/internal/cli"
	"github.com/inovacc/degreeclass/internal/core"
	"github.com/inovacc/degreeclass/internal/model"
	"github.com/inovacc/degreeclass/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var (
	// Global flags
	configPath  string
	dataPath    string
	averagePath string
	historyPath string
	verbose     bool

	useTUI bool

	cfg    model.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Track academic module grades and degree averages",
	Long: `degreeclass keeps a CSV file of academic modules (code, name, credits,
FHEQ level and grade) and computes the weighted average of each study year
and the overall degree average.

Run without arguments to enter the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}

		l, err := newLogger(loaded.Log.Level, verbose)
		if err != nil {
			return err
		}

		cfg, logger = loaded, l

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runShell,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.WriteError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addFileFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "Use the full-screen menu instead of the line prompt")
}

// addFileFlags registers the flags that override the [files] section.
func addFileFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configPath, "config", "", "Path to the ini configuration file (default: application directory)")
	fs.StringVar(&dataPath, "data", "", "Path to the CSV file of module records")
	fs.StringVar(&averagePath, "average", "", "Path to the file the degree average is written to")
	fs.StringVar(&historyPath, "history", "", "Path to the degree average history database")
}

// loadConfig reads the configuration file and applies the path flags on top.
func loadConfig() (model.Config, error) {
	path := configPath
	if path == "" {
		if p, err := application.DefaultConfigPath(); err == nil {
			path = p
		}
	}

	loaded, err := core.LoadConfig(path)
	if err != nil {
		return loaded, err
	}

	if dataPath != "" {
		loaded.Files.Data = dataPath
	}

	if averagePath != "" {
		loaded.Files.Average = averagePath
	}

	if historyPath != "" {
		loaded.Files.History = historyPath
	}

	return loaded, nil
}

func newLogger(level string, debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config.Level = zap.NewAtomicLevelAt(lvl)
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return l, nil
}

func resolveHistoryPath() (string, error) {
	if cfg.Files.History != "" {
		return cfg.Files.History, nil
	}

	return application.DefaultHistoryPath()
}

// newClassifier builds the classifier for the configured files. With
// withHistory set it also opens the history database; a history that cannot
// be opened is logged and left out. The returned func releases the database.
func newClassifier(withHistory bool) (*core.Classifier, func()) {
	csv := store.NewCSV(cfg.Files.Data, logger)
	opts := []core.ClassifierOption{core.WithLogger(logger)}
	done := func() {}

	if withHistory {
		if h, err := openHistory(); err != nil {
			logger.Warn("degree average history disabled", zap.Error(err))
		} else {
			opts = append(opts, core.WithHistory(h))
			done = func() {
				if err := h.Close(); err != nil {
					logger.Warn("failed to close history", zap.Error(err))
				}
			}
		}
	}

	return core.NewClassifier(cfg, csv, opts...), done
}

func openHistory() (*store.History, error) {
	path, err := resolveHistoryPath()
	if err != nil {
		return nil, err
	}

	return store.OpenHistory(path)
}

func runShell(cmd *cobra.Command, _ []string) error {
	classifier, done := newClassifier(true)
	defer done()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)

	defer signal.Stop(interrupts)

	shell := cli.NewShell(classifier, cmd.InOrStdin(), cmd.OutOrStdout(),
		cli.WithInterrupts(interrupts),
		cli.WithShellLogger(logger),
	)

	if useTUI {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			shell.Close()
			return errors.New("--tui needs an interactive terminal")
		}

		return cli.RunMenu(shell)
	}

	return shell.Run()
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"nxhl/internal/config"
	"nxhl/internal/log"
)

var version = "dev"

// app is the state shared by every subcommand of one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
	flush   func()
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop(), flush: func() {}}

	root := &cobra.Command{
		Use:   "nxhl",
		Short: "Rule-driven recursive syntax highlighter",
		Long: `nxhl highlights text with regular expression rules. A rule that matches can
rescan what it matched with its dependent rules, so strings get highlighted
references, substitutions get highlighted commands, and so on.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.flush() },
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ~/.config/nxhl/config.yaml)")
	flags.StringP("grammar", "g", "",
		"built-in grammar or grammar file name (default: detected from the file name)")
	flags.String("grammar-file", "",
		"grammar definition file (.yaml, .toml or .json)")
	flags.String("theme", "",
		"chroma style to recolour the grammar with")
	flags.Bool("ignore-case", false,
		"match patterns case-insensitively")
	flags.Bool("debug", false,
		"log at debug level")
	flags.String("log-file", "",
		"write logs to this file instead of stderr")

	_ = a.v.BindPFlag("grammar", flags.Lookup("grammar"))
	_ = a.v.BindPFlag("grammar_file", flags.Lookup("grammar-file"))
	_ = a.v.BindPFlag("theme", flags.Lookup("theme"))
	_ = a.v.BindPFlag("case_insensitive", flags.Lookup("ignore-case"))
	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = a.v.BindPFlag("log_file", flags.Lookup("log-file"))

	root.AddCommand(
		a.renderCmd(),
		a.spansCmd(),
		a.viewCmd(),
		a.grammarsCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}

	logger, flush, err := log.New(log.Options{Debug: a.cfg.Debug, File: a.cfg.LogFile})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	a.logger, a.flush = logger, flush
	cmd.SetContext(log.NewContext(cmd.Context(), logger))

	logger.Debug("config loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.String("grammar", a.cfg.Grammar),
		zap.String("theme", a.cfg.Theme))
	return nil
}

func (a *app) initConfig() error {
	config.SetDefaults(a.v)
	a.v.SetEnvPrefix("NXHL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		// Config lookup order:
		// 1. .nxhl/config.yaml (current directory)
		// 2. ~/.config/nxhl/config.yaml (user config)
		if _, err := os.Stat(".nxhl/config.yaml"); err == nil {
			a.v.SetConfigFile(".nxhl/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			a.v.AddConfigPath(filepath.Join(home, ".config", "nxhl"))
			a.v.SetConfigName("config")
			a.v.SetConfigType("yaml")
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		// No config file anywhere is fine; a broken or missing named one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.cfgFile != "" {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
}

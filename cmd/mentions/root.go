package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nioark/mentions/internal/config"
	"github.com/nioark/mentions/internal/directory"
	"github.com/nioark/mentions/internal/engine/tokenize"
	"github.com/nioark/mentions/internal/logging"
)

// env is the state shared by every subcommand once flags are parsed.
type env struct {
	configPath string

	// Flag values, applied over the config only when set.
	directory string
	logLevel  string
	trigger   string
	watchFlag bool

	cfg    config.Config
	logger *slog.Logger
	dir    *directory.Directory
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "mentions",
		Short: "Track @mentions in edited text",
		Long: `mentions segments text into mention candidates, suggests directory
entries for the candidate under the caret, and keeps committed mentions in
sync with the text as it is edited.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&e.configPath, "config", "c", "", "path to configuration file")
	flags.StringVar(&e.directory, "directory", "", "directory file (.toml, .yaml, .json); built-in demo directory if empty")
	flags.StringVar(&e.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&e.trigger, "trigger", "", "character that starts a mention")
	flags.BoolVar(&e.watchFlag, "watch", false, "reload the directory file when it changes")

	root.AddCommand(
		newSegmentCmd(e),
		newSuggestCmd(e),
		newSessionCmd(e),
	)
	return root
}

// setup resolves the configuration, the logger and the directory.
// Flags override the config file and the environment.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("directory") {
		cfg.Directory = e.directory
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = e.logLevel
	}
	if flags.Changed("trigger") {
		cfg.Trigger = e.trigger
	}
	if flags.Changed("watch") {
		cfg.Watch = e.watchFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := cfg.Logging()
	logCfg.Output = cmd.ErrOrStderr()
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}

	dir := directory.Default()
	if cfg.Directory != "" {
		dir, err = directory.Load(cfg.Directory)
		if err != nil {
			return err
		}
	}
	logger.Debug("directory loaded", "path", cfg.Directory, "entries", dir.Len())

	e.cfg = cfg
	e.logger = logger
	e.dir = dir
	return nil
}

func (e *env) tokenizer() *tokenize.Tokenizer {
	return tokenize.New(tokenize.WithTrigger(e.cfg.TriggerRune()))
}

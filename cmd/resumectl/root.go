package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-composer/internal/config"
	"resume-composer/internal/logging"
)

// rootOptions carries the persistent flags and the state prepared before a subcommand runs
type rootOptions struct {
	verbose    bool
	configFile string

	cfg    *config.Config
	logger logging.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "resumectl",
		Short: "Generate and render ATS-friendly resumes",
		Long: `resumectl turns a job application request into a resume document.

It can ask the configured language model for resume text, synthesize
fallback content offline, or render resume text you already have into
a Word document or an HTML preview.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.CloseLogging()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: built-in defaults plus environment)")

	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newJobCodeCmd(opts))

	return cmd
}

// setup loads configuration and routes logs to stderr when verbose, or keeps them in memory otherwise
func (o *rootOptions) setup() error {
	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	cfg.Logging.Adapters = nil
	if o.verbose {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "text"
		cfg.Logging.Output = "stderr"
	} else {
		cfg.Logging.Adapters = append(cfg.Logging.Adapters, struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		}{Name: "memory", Type: "memory", Enabled: true})
	}

	if err := logging.InitializeLogging(cfg); err != nil {
		return errors.Wrap(err, "failed to initialize logging")
	}

	o.cfg = cfg
	o.logger = logging.GetGlobalLogger().WithField("component", "resumectl")
	return nil
}

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/config"
	"github.com/undeniable-app/undeniable/utils/constant"
)

type rootOptions struct {
	configDir string
	verbose   bool
	out       io.Writer
	errOut    io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "undeniable",
		Short: "Draft an appeal for a denied health insurance claim",
		Long: `undeniable serves a form that turns a few details about a denied claim
into an appeal letter addressed to the insurer's appeals contact.

Example:
  undeniable serve                         # Run the web server
  undeniable directory check -o yaml       # Validate the insurer directory
  undeniable render --company Aetna --claim A123`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", constant.DefaultConfigDir, "folder holding <env>/config.yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newDirectoryCmd(opts))
	cmd.AddCommand(newRenderCmd(opts))
	return cmd
}

// cliLogger logs to stderr so stdout carries only command output.
func (o *rootOptions) cliLogger() *log.Log {
	level := string(log.WarnLevel)
	if o.verbose {
		level = string(log.DebugLevel)
	}
	logger, err := log.NewLogger(log.NewLoggerConfig(false, log.WithOutput(o.errOut), log.WithLevel(level)))
	if err != nil {
		return log.NewBasicLogger(false)
	}
	return logger
}

// directoryConfig returns the directory block of the configuration file
// when --config-dir was given, else the embedded source defaults.
func (o *rootOptions) directoryConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config-dir") {
		return config.Load(o.configDir)
	}
	return &config.Config{
		Directory: config.DirectoryConfig{
			Source:     constant.SourceEmbedded.String(),
			HTTPClient: "std",
		},
	}, nil
}

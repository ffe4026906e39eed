package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/undeniable-app/undeniable/directory"
	"github.com/undeniable-app/undeniable/utils/codec"
)

type checkOptions struct {
	source     string
	path       string
	url        string
	httpClient string
	timeout    time.Duration
	bucket     string
	key        string
	region     string
	endpoint   string
	output     string
	strict     bool
}

// checkResult is the printed report of one directory check.
type checkResult struct {
	directory.Report `yaml:",inline"`
	Companies        []string `json:"companies" yaml:"companies"`
}

func newDirectoryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Inspect the insurer directory",
	}
	cmd.AddCommand(newDirectoryCheckCmd(opts))
	return cmd
}

func newDirectoryCheckCmd(opts *rootOptions) *cobra.Command {
	co := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load and validate the insurer directory",
		Long: `Load the insurer directory from its source and print the rows that were
kept and the rows that were dropped, with the reason for each drop.

The source comes from the configuration file when --config-dir is given,
otherwise the embedded directory is checked. Source flags override both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDirectoryCheck(cmd, opts, co)
		},
	}

	f := cmd.Flags()
	f.StringVar(&co.source, "source", "", "directory source: embedded, file, http or s3")
	f.StringVar(&co.path, "path", "", "CSV file path for the file source")
	f.StringVar(&co.url, "url", "", "CSV URL for the http source")
	f.StringVar(&co.httpClient, "http-client", "", "http client for the http source: std or fast")
	f.DurationVar(&co.timeout, "timeout", 10*time.Second, "fetch timeout for the http source")
	f.StringVar(&co.bucket, "s3-bucket", "", "bucket for the s3 source")
	f.StringVar(&co.key, "s3-key", "", "object key for the s3 source")
	f.StringVar(&co.region, "s3-region", "", "region for the s3 source")
	f.StringVar(&co.endpoint, "s3-endpoint", "", "custom endpoint for the s3 source")
	f.StringVarP(&co.output, "output", "o", "json", "report format: json or yaml")
	f.BoolVar(&co.strict, "strict", false, "fail when any row was dropped")
	return cmd
}

func runDirectoryCheck(cmd *cobra.Command, opts *rootOptions, co *checkOptions) error {
	format, ok := codec.Parse(co.output)
	if !ok {
		return fmt.Errorf("unsupported output format %q", co.output)
	}

	cfg, err := opts.directoryConfig(cmd)
	if err != nil {
		return err
	}
	dc := &cfg.Directory
	set := func(target *string, value string) {
		if value != "" {
			*target = value
		}
	}
	set(&dc.Source, co.source)
	set(&dc.Path, co.path)
	set(&dc.URL, co.url)
	set(&dc.HTTPClient, co.httpClient)
	set(&dc.S3.Bucket, co.bucket)
	set(&dc.S3.Key, co.key)
	set(&dc.S3.Region, co.region)
	set(&dc.S3.Endpoint, co.endpoint)
	if cmd.Flags().Changed("timeout") || dc.Timeout <= 0 {
		dc.Timeout = co.timeout
	}

	logger := opts.cliLogger()
	defer func() { _ = logger.Sync() }()

	source, err := directory.NewSource(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	dir, report, err := directory.LoadFrom(cmd.Context(), source, logger)
	if err != nil {
		return err
	}

	out, err := codec.Encode(checkResult{Report: *report, Companies: dir.Names()}, format)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}

	if co.strict && len(report.Dropped) > 0 {
		return fmt.Errorf("%d directory rows were dropped", len(report.Dropped))
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/undeniable-app/undeniable/adapters/email"
	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/compose"
	"github.com/undeniable-app/undeniable/directory"
	"github.com/undeniable-app/undeniable/form"
	"github.com/undeniable-app/undeniable/utils/codec"
)

type renderOptions struct {
	values form.Values
	output string
	mailto bool
	eml    bool
}

type renderResult struct {
	compose.GeneratedEmail `yaml:",inline"`
	Mailto                 string `json:"mailto,omitempty" yaml:"mailto,omitempty"`
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	ro := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the appeal email for the given details",
		Long: `Run the same pipeline as the web form and print the generated email.
Fields left out are rendered as bracketed placeholders such as [NAME].`,
		Example: `  undeniable render --name "Jane Doe" --company Aetna --residence CA --care NY --claim A123`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts, ro)
		},
	}

	f := cmd.Flags()
	f.StringVar(&ro.values.Name, "name", "", "your name")
	f.StringVar(&ro.values.InsuranceCompany, "company", "", "insurance company as listed in the directory")
	f.StringVar(&ro.values.StateOfResidence, "residence", "", "two letter state of residence")
	f.StringVar(&ro.values.StateOfCare, "care", "", "two letter state where care was provided")
	f.StringVar(&ro.values.ClaimNumber, "claim", "", "claim number")
	f.StringVarP(&ro.output, "output", "o", "text", "output format: text, json or yaml")
	f.BoolVar(&ro.mailto, "mailto", false, "include the mailto: URI")
	f.BoolVar(&ro.eml, "eml", false, "print an unsent .eml draft instead")
	return cmd
}

func runRender(cmd *cobra.Command, opts *rootOptions, ro *renderOptions) error {
	cfg, err := opts.directoryConfig(cmd)
	if err != nil {
		return err
	}
	logger := opts.cliLogger()
	defer func() { _ = logger.Sync() }()

	source, err := directory.NewSource(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	dir, _, err := directory.LoadFrom(cmd.Context(), source, logger)
	if err != nil {
		return err
	}

	state := form.NewState()
	values := state.SetAll(ro.values)
	email := compose.ComputeEmail(values, dir)
	out := cmd.OutOrStdout()

	if ro.eml {
		raw, err := compose.BuildDraft(newDraftBuilder(logger), email)
		if err != nil {
			return err
		}
		_, err = out.Write(raw)
		return err
	}

	if ro.output == "text" {
		if email.Error != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", email.Error)
		}
		fmt.Fprintf(out, "To: %s\nSubject: %s\n\n%s\n", email.DisplayTo(), email.Subject, email.Body)
		if ro.mailto {
			fmt.Fprintf(out, "\n%s\n", email.Mailto())
		}
		return nil
	}

	format, ok := codec.Parse(ro.output)
	if !ok {
		return fmt.Errorf("unsupported output format %q", ro.output)
	}
	result := renderResult{GeneratedEmail: email}
	if ro.mailto {
		result.Mailto = email.Mailto()
	}
	raw, err := codec.Encode(result, format)
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}

func newDraftBuilder(logger *log.Log) email.DraftBuilder {
	return email.NewGomailDraftBuilder(email.WithLog(logger))
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	dhi "github.com/dhilabs/dhi-go"
	_ "github.com/dhilabs/dhi-go/source" // go-json driver as default
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dhi",
		Short:         "Batch data validation against a compiled field schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd())
	root.AddCommand(newRulesCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	var (
		schemaPath string
		strict     bool
		quiet      bool
		maxDepth   int
		maxBytes   int64
	)
	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Validate a JSON array of records against a schema document",
		Long: `Validate reads a JSON array of objects (from a file or stdin) and checks
every element against the schema document, printing a summary and the indices
of invalid records. Exit status is 0 when all records pass, 1 when some fail,
and 2 when the input could not be processed at all.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := os.ReadFile(schemaPath)
			if err != nil {
				return exitErr{2, fmt.Errorf("read schema: %w", err)}
			}
			var copts []dhi.CompileOption
			if strict {
				copts = append(copts, dhi.Strict())
			}
			schema, err := dhi.CompileDoc(doc, copts...)
			if err != nil {
				return exitErr{2, describeIssues("schema", err)}
			}

			in, closeIn, err := openInput(args)
			if err != nil {
				return exitErr{2, err}
			}
			defer closeIn()

			var jopts []dhi.JSONOption
			if maxDepth > 0 {
				jopts = append(jopts, dhi.MaxDepth(maxDepth))
			}
			if maxBytes > 0 {
				jopts = append(jopts, dhi.MaxBytes(maxBytes))
			}
			res, err := dhi.ValidateJSON(cmd.Context(), schema, dhi.JSONReader(in), jopts...)
			if err != nil {
				return exitErr{2, describeIssues("input", err)}
			}

			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "valid %d/%d\n", res.ValidCount, res.Total())
				for _, i := range res.InvalidIndices() {
					fmt.Fprintf(cmd.OutOrStdout(), "invalid: record %d\n", i)
				}
			}
			if !res.AllValid() {
				return exitErr{1, nil}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema document (YAML or JSON)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unknown rules and missing parameters")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-record output")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum input nesting depth (0 = unlimited)")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "maximum input bytes (0 = unlimited)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rule names the schema compiler accepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range dhi.KnownRules() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func describeIssues(subject string, err error) error {
	iss, ok := dhi.AsIssues(err)
	if !ok {
		return err
	}
	var b []byte
	for _, it := range iss {
		b = append(b, fmt.Sprintf("%s: %s at %s: %s\n", subject, it.Code, it.Path, it.LocalizedMessage())...)
	}
	if len(b) == 0 {
		return err
	}
	return errors.New(string(b[:len(b)-1]))
}

// exitErr carries a process exit code through cobra's error path.
type exitErr struct {
	code int
	err  error
}

func (e exitErr) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

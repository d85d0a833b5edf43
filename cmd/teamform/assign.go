package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/teamform/teamform/internal/formation"
	"github.com/teamform/teamform/internal/submission"
	"github.com/teamform/teamform/internal/tsv"
)

// errRejected is returned when the validator rejects the file.
var errRejected = errors.New("submissions file failed validation")

type assignOptions struct {
	seed    uint64
	output  string
	columns submission.Columns
	verbose bool
}

type assignOutput struct {
	Result        formation.Result  `json:"result"`
	RowsProcessed int               `json:"rows_processed"`
	Summary       formation.Summary `json:"summary"`
}

func newAssignCmd() *cobra.Command {
	opts := assignOptions{columns: submission.DefaultColumns()}

	cmd := &cobra.Command{
		Use:   "assign <file.tsv>",
		Short: "Validate a submissions file, form teams and assign projects",
		Long: `Reads a tab-separated submissions export, checks every row, then forms
teams of five and binds each team to a project. On validation failure the
report is printed and the command exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssign(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible runs (0 picks a fresh one)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "json", "output format: json, yaml or text")
	cmd.Flags().StringVar(&opts.columns.Members, "members-column", opts.columns.Members, "column listing collaborators")
	cmd.Flags().StringVar(&opts.columns.Projects, "projects-column", opts.columns.Projects, "column listing project preferences")
	cmd.Flags().StringVar(&opts.columns.Timestamp, "timestamp-column", opts.columns.Timestamp, "column holding the submission time")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline stages to stderr")

	return cmd
}

func runAssign(out io.Writer, path string, opts assignOptions) error {
	switch opts.output {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := tsv.Decode(raw)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	report := tsv.Validate(text)
	if !report.OK {
		if err := write(out, opts.output, report, func(w io.Writer) error { return renderReport(w, report) }); err != nil {
			return err
		}
		return errRejected
	}

	rows, err := tsv.ParseRecords(text)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	engine := formation.New(
		formation.WithColumns(opts.columns),
		formation.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))),
	)

	seed := opts.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	outcome := engine.Run(rows, rand.New(rand.NewPCG(seed, seed)))

	result := assignOutput{Result: outcome.Result, RowsProcessed: len(rows), Summary: outcome.Summary}
	return write(out, opts.output, result, func(w io.Writer) error { return renderOutcome(w, outcome) })
}

func write(out io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = out.Write(b)
		return err
	case "text":
		return text(out)
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

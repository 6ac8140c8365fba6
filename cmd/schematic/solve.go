package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/schematic/internal/report"
	"github.com/katalvlaran/schematic/internal/runner"
)

// errStdinTwice rejects several '-' arguments; stdin can only be read once.
var errStdinTwice = errors.New("stdin ('-') may be given at most once")

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file...]",
		Short: "Solve one or more schematic files ('-' or none reads stdin)",
		Example: `  schematic solve input.txt
  schematic solve --format yaml --detail a.txt b.txt
  cat input.txt | schematic solve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make([]runner.Input, 0, len(args))
			if len(args) == 0 {
				args = []string{"-"}
			}
			stdin := false
			for _, name := range args {
				if name == "-" {
					if stdin {
						return errStdinTwice
					}
					stdin = true
				}
				inputs = append(inputs, openInput(cmd, name))
			}

			results, err := runner.Run(cmd.Context(), a.logger, inputs, runner.Options{
				Workers: a.cfg.Workers,
				Detail:  a.cfg.Detail,
			})
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), report.Format(a.cfg.Format), results)
		},
	}

	cmd.Flags().StringVarP(&a.format, "format", "f", "text", "output format: text, yaml or json")
	cmd.Flags().IntVarP(&a.workers, "workers", "w", 4, "number of inputs solved concurrently")
	cmd.Flags().BoolVarP(&a.detail, "detail", "d", false, "list part numbers and gears")
	return cmd
}

func openInput(cmd *cobra.Command, name string) runner.Input {
	if name == "-" {
		return runner.Input{Name: "<stdin>", Read: func() ([]byte, error) {
			return io.ReadAll(cmd.InOrStdin())
		}}
	}
	return runner.Input{Name: name, Read: func() ([]byte, error) {
		return os.ReadFile(name)
	}}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cykrypt/registration/svc/registration"
)

var errInvalid = errors.New("registration is invalid")

func newValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a team file without submitting it",
		Example: `  regctl validate -f team.yaml
  cat team.yaml | regctl validate -f -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tf, err := readTeamFile(file)
			if err != nil {
				return err
			}
			out := registration.ValidateAll(tf.registration())
			printOutcome(cmd.OutOrStdout(), out)
			if !out.Valid() {
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "team file in YAML, - for stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func printOutcome(w io.Writer, out registration.Outcome) {
	for _, k := range slices.Sorted(maps.Keys(out.Errors)) {
		fmt.Fprintf(w, "error   %-16s %s\n", k, out.Errors[k])
	}
	for _, k := range slices.Sorted(maps.Keys(out.Warnings)) {
		fmt.Fprintf(w, "warning %-16s %s\n", k, out.Warnings[k])
	}
	if out.Valid() {
		fmt.Fprintln(w, "ok")
	}
}

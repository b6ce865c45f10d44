package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chunkmul/matrix"
	"github.com/katalvlaran/chunkmul/partition"
)

// maxPlanWorkers bounds the table printed by plan.
const maxPlanWorkers = 1 << 16

func (a *app) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <rows> <N>",
		Short: "Print the row range each of N workers owns",
		Long: `Prints one line per worker with its half-open row range, useful when
launching the N worker processes.

Example:
  chunkmul plan 10 3`,
		Args:        exactArgs(2),
		Annotations: map[string]string{usageAnnotation: planUsageText},
		RunE: a.runPlan,
	}
}

func (a *app) runPlan(_ *cobra.Command, args []string) error {
	rows, err := parseCount("rows", args[0])
	if err != nil {
		return err
	}
	n, err := parseCount("N", args[1])
	if err != nil {
		return err
	}

	if n > maxPlanWorkers {
		return fmt.Errorf("N=%d exceeds %d workers: %w", n, maxPlanWorkers, matrix.ErrInvalidArgument)
	}

	plan, err := partition.Plan(rows, n)
	if err != nil {
		return err
	}
	for id, rr := range plan {
		fmt.Fprintf(a.stdout, "worker %d: %s (%d rows)\n", id, rr, rr.Len())
	}

	return nil
}

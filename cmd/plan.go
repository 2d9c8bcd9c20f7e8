package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiplan "github.com/abrokate/powerplant-coding-challenge/api/plan"
	"github.com/abrokate/powerplant-coding-challenge/core/plan"
	"github.com/abrokate/powerplant-coding-challenge/infra/logger"
)

var planStrategy string

var planCmd = &cobra.Command{
	Use:   "plan <payload.json>",
	Short: "Compute a production plan from a payload file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planStrategy, "strategy", "merit", "allocation strategy: merit or lp")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	req, err := apiplan.ParsePayload(data)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	var alloc plan.Allocator = plan.MeritAllocator{}
	switch planStrategy {
	case "merit":
	case "lp":
		alloc = plan.NewLPAllocator()
	default:
		return fmt.Errorf("unknown strategy %s", planStrategy)
	}

	planner := plan.NewPlanner(alloc, logger.New("plan-command"), nil, nil)
	assignments, err := planner.ComputePlan(req)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(assignments, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

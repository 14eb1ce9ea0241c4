package cli

import (
	"github.com/spf13/cobra"

	"github.com/FACorreiaa/travelbot-console/internal/types"
)

func newPlanCmd() *cobra.Command {
	var (
		city     string
		days     int
		interest []string
		withKids bool
		budget   string
		maxWalk  int
		style    string
		numPlans int
		selected int
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Request an itinerary and render it with a synchronized map view",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := setup(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			deps.Startup(ctx)

			req := types.PlanRequest{
				City:        city,
				Days:        days,
				Interests:   interest,
				WithKids:    withKids,
				Budget:      budget,
				MaxWalkMin:  maxWalk,
				TravelStyle: style,
				NumPlans:    numPlans,
				WithSummary: true,
			}
			if err := deps.Orch.Submit(ctx, req); err != nil {
				// Already presented; the exit code is the only extra signal.
				return err
			}

			if selected > 0 {
				if err := deps.Gallery.Select(ctx, selected); err != nil {
					deps.Console.ShowPlaceholder("No such plan alternative; keeping the first plan on the map.")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "destination city code (e.g. osaka)")
	cmd.Flags().IntVar(&days, "days", 2, "trip length in days")
	cmd.Flags().StringSliceVar(&interest, "interests", nil, "interest keywords, comma separated")
	cmd.Flags().BoolVar(&withKids, "with-kids", false, "traveling with children")
	cmd.Flags().StringVar(&budget, "budget", "$$", "budget band ($, $$, $$$)")
	cmd.Flags().IntVar(&maxWalk, "max-walk", 20, "maximum walking minutes between stops")
	cmd.Flags().StringVar(&style, "style", "mixed", "travel style: relax, foodie, sightseeing, shopping, mixed")
	cmd.Flags().IntVar(&numPlans, "plans", 1, "number of plan alternatives to request (1-3)")
	cmd.Flags().IntVar(&selected, "select", 0, "plan alternative whose points drive the map (0-based)")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}

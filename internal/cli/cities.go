package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/travelbot-console/internal/types"
)

func newCitiesCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List supported cities, or look one up by code",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := setup(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := deps.Directory.Refresh(ctx); err != nil {
				deps.Console.ShowPlaceholder(fmt.Sprintf("City list unavailable: %v", err))
				return err
			}

			if code != "" {
				city, err := deps.Directory.Lookup(code)
				if errors.Is(err, types.ErrNotFound) {
					deps.Console.ShowPlaceholder(fmt.Sprintf("Unknown city code %q.", code))
					return err
				}
				deps.Console.ShowCities([]types.City{city}, deps.Directory.ImageURL)
				return nil
			}

			cities := make([]types.City, 0)
			for _, c := range deps.Directory.Codes() {
				if city, err := deps.Directory.Lookup(c); err == nil {
					cities = append(cities, city)
				}
			}
			deps.Console.ShowCities(cities, deps.Directory.ImageURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "exact city code to look up")
	return cmd
}

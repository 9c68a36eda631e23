package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mados/internal/domain/entity"
	"mados/internal/usecase"
)

var nearbyLat, nearbyLon float64

var nearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "List stores by distance from a position",
	Long: `Prints every store of the seed dataset ordered by distance.

Example:
  mados nearby --lat -6.2088 --lon 106.8456`,
	RunE: runNearby,
}

func init() {
	nearbyCmd.Flags().Float64Var(&nearbyLat, "lat", 0, "latitude in degrees")
	nearbyCmd.Flags().Float64Var(&nearbyLon, "lon", 0, "longitude in degrees")
	_ = nearbyCmd.MarkFlagRequired("lat")
	_ = nearbyCmd.MarkFlagRequired("lon")
}

func runNearby(cmd *cobra.Command, args []string) error {
	if nearbyLat < -90 || nearbyLat > 90 || nearbyLon < -180 || nearbyLon > 180 {
		return fmt.Errorf("invalid position %f,%f", nearbyLat, nearbyLon)
	}

	state, closeSeed, err := loadState(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeSeed()

	here := entity.Coordinates{Latitude: nearbyLat, Longitude: nearbyLon}
	stores := usecase.NewDiscoveryUseCase(state, nil, nil).NearbyStores(cmd.Context(), here)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DISTANCE\tSTORE\tADDRESS")
	for _, s := range stores {
		fmt.Fprintf(w, "%s\t%s\t%s\n", formatDistance(s.Distance), s.Name, s.Address)
	}
	return w.Flush()
}

func formatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

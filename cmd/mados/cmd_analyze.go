package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"mados/internal/domain/entity"
	"mados/internal/usecase"
)

var analyzeLat, analyzeLon float64

var analyzeImageCmd = &cobra.Command{
	Use:   "analyze-image FILE",
	Short: "Recognise the item in a photo and search the catalog for it",
	Long: `Sends FILE to the image analyzer (GEMINI_API_KEY must be set), then
searches the seed catalog by the first word of the recognised name.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyzeImage,
}

func init() {
	analyzeImageCmd.Flags().Float64Var(&analyzeLat, "lat", -6.2088, "latitude used to rank stores")
	analyzeImageCmd.Flags().Float64Var(&analyzeLon, "lon", 106.8456, "longitude used to rank stores")
}

func runAnalyzeImage(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	analyzer, err := imageAnalyzer(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if analyzer == nil {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	state, closeSeed, err := loadState(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeSeed()

	discovery := usecase.NewDiscoveryUseCase(state, analyzer, nil)
	here := entity.Coordinates{Latitude: analyzeLat, Longitude: analyzeLon}
	result, err := discovery.SearchByImage(cmd.Context(), "cli", here, data, http.DetectContentType(data))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Item:        %s\n", result.Analysis.ItemName)
	fmt.Fprintf(out, "Category:    %s\n", result.Analysis.Category)
	fmt.Fprintf(out, "Description: %s\n", result.Analysis.Description)
	fmt.Fprintln(out)

	if len(result.Items) == 0 {
		fmt.Fprintf(out, "No items found for %q\n", result.SearchedTerm)
		return nil
	}
	for _, item := range result.Items {
		fmt.Fprintf(out, "%-30s Rp%-10d %s (%s)\n", item.Name, item.Price, item.StoreName, formatDistance(item.StoreDistance))
	}
	return nil
}

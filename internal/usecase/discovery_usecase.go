package usecase

import (
	"context"
	"sort"
	"strings"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/internal/domain/service"
	"mados/internal/geo"
	"mados/internal/infrastructure/ratelimit"
	"mados/pkg/errors"
	"mados/pkg/logger"
)

const (
	PointStore         = "store"
	PointPublicService = "public_service"
)

// DiscoveryUseCase answers the location based views: nearby stores, the map
// and item search by text or by photo.
type DiscoveryUseCase struct {
	state    *appstate.State
	analyzer service.ImageAnalyzer
	limiter  RateLimiter
}

func NewDiscoveryUseCase(state *appstate.State, analyzer service.ImageAnalyzer, limiter RateLimiter) *DiscoveryUseCase {
	return &DiscoveryUseCase{state: state, analyzer: analyzer, limiter: limiter}
}

type StoreWithDistance struct {
	entity.Store
	Distance float64 `json:"distance"`
}

type MapPoint struct {
	Kind        string             `json:"kind"`
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	Type        string             `json:"type,omitempty"`
	Coordinates entity.Coordinates `json:"coordinates"`
	Distance    *float64           `json:"distance,omitempty"`
}

type FoundItem struct {
	entity.Item
	StoreName     string  `json:"store_name"`
	StoreDistance float64 `json:"store_distance"`
}

type ImageSearchResult struct {
	SearchedTerm string                 `json:"searched_term"`
	Analysis     *service.ImageAnalysis `json:"analysis"`
	Items        []FoundItem            `json:"items"`
}

// NearbyStores sorts all stores by distance from here, nearest first.
func (uc *DiscoveryUseCase) NearbyStores(ctx context.Context, here entity.Coordinates) []StoreWithDistance {
	stores := uc.state.Stores()
	out := make([]StoreWithDistance, 0, len(stores))
	for _, s := range stores {
		out = append(out, StoreWithDistance{Store: s, Distance: geo.Distance(here, s.Coordinates)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

// PopularNearby takes the first two items of the two nearest stores.
func (uc *DiscoveryUseCase) PopularNearby(ctx context.Context, here entity.Coordinates) []FoundItem {
	var out []FoundItem
	for i, s := range uc.NearbyStores(ctx, here) {
		if i == 2 {
			break
		}
		for j, item := range s.Items {
			if j == 2 {
				break
			}
			out = append(out, FoundItem{Item: item, StoreName: s.Name, StoreDistance: s.Distance})
		}
	}
	return out
}

// MapPoints lists stores then public services. Distances are set when here
// is known; query matches name, address or service type ignoring case.
func (uc *DiscoveryUseCase) MapPoints(ctx context.Context, here *entity.Coordinates, query string) []MapPoint {
	var points []MapPoint
	for _, s := range uc.state.Stores() {
		points = append(points, MapPoint{Kind: PointStore, ID: s.ID, Name: s.Name, Address: s.Address, Coordinates: s.Coordinates})
	}
	for _, ps := range uc.state.PublicServices() {
		points = append(points, MapPoint{Kind: PointPublicService, ID: ps.ID, Name: ps.Name, Address: ps.Address, Type: ps.Type, Coordinates: ps.Coordinates})
	}

	if here != nil {
		for i := range points {
			d := geo.Distance(*here, points[i].Coordinates)
			points[i].Distance = &d
		}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return points
	}
	filtered := make([]MapPoint, 0, len(points))
	for _, p := range points {
		if containsFold(p.Name, query) || containsFold(p.Address, query) || (p.Type != "" && containsFold(p.Type, query)) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SearchItems matches item name or description and orders by store distance.
func (uc *DiscoveryUseCase) SearchItems(ctx context.Context, here entity.Coordinates, query string) ([]FoundItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Validation("Kata kunci pencarian harus diisi.")
	}
	return uc.matchItems(here, query), nil
}

// SearchByImage names the pictured item and searches by the first word of
// that name. Analyzer failures are not retried.
func (uc *DiscoveryUseCase) SearchByImage(ctx context.Context, userID string, here entity.Coordinates, image []byte, mimeType string) (*ImageSearchResult, error) {
	if len(image) == 0 {
		return nil, errors.Validation("Gambar harus diupload.")
	}
	if uc.analyzer == nil {
		return nil, errors.ServiceUnavailable("Pencarian gambar tidak tersedia.", nil)
	}
	if err := allow(uc.limiter, userID, ratelimit.ActionAnalyze); err != nil {
		return nil, err
	}

	analysis, err := uc.analyzer.AnalyzeImage(ctx, image, mimeType)
	if err != nil {
		logger.Error("image analysis failed: %v", err)
		return nil, errors.ServiceUnavailable("Failed to analyze image with Gemini.", err)
	}

	result := &ImageSearchResult{SearchedTerm: analysis.ItemName, Analysis: analysis, Items: []FoundItem{}}
	fields := strings.Fields(analysis.ItemName)
	if len(fields) == 0 {
		return result, nil
	}
	result.Items = uc.matchItems(here, fields[0])
	return result, nil
}

func (uc *DiscoveryUseCase) matchItems(here entity.Coordinates, term string) []FoundItem {
	found := make([]FoundItem, 0)
	for _, s := range uc.state.Stores() {
		d := geo.Distance(here, s.Coordinates)
		for _, item := range s.Items {
			if containsFold(item.Name, term) || containsFold(item.Description, term) {
				found = append(found, FoundItem{Item: item, StoreName: s.Name, StoreDistance: d})
			}
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].StoreDistance < found[j].StoreDistance })
	return found
}

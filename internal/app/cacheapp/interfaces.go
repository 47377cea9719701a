package cacheapp

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=cacheapp

import (
	"context"

	"github.com/IsaacDSC/placecache/internal/domain"
)

type PlaceCache interface {
	GetPlaces(ctx context.Context, placeIDs []string, languageCode string) []domain.PlaceRecord
	GetPhoto(ctx context.Context, photoReference string) (domain.PhotoMedia, error)
}

type InsightsReader interface {
	Today(ctx context.Context) (domain.Insights, error)
	Day(ctx context.Context, day string) (domain.Insights, error)
}

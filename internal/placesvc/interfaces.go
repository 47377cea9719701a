package placesvc

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=placesvc

import (
	"context"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/IsaacDSC/placecache/internal/fetcher"
)

type PlaceAPI interface {
	PlaceDetails(ctx context.Context, placeID, languageCode string) ([]byte, error)
	PhotoMedia(ctx context.Context, photoName string) ([]byte, string, error)
}

type Insights interface {
	Record(ctx context.Context, kind domain.CacheKind, outcome domain.Outcome) error
}

type Notifier interface {
	Notify(ctx context.Context, alert fetcher.Alert) error
}

type noopInsights struct{}

func (noopInsights) Record(context.Context, domain.CacheKind, domain.Outcome) error { return nil }

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, fetcher.Alert) error { return nil }

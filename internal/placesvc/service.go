package placesvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/IsaacDSC/placecache/internal/fetcher"
	"github.com/IsaacDSC/placecache/internal/objstore"
	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	conf     Config
	store    objstore.Store
	api      PlaceAPI
	insights Insights
	notifier Notifier
}

type Option func(*Service)

func WithInsights(i Insights) Option {
	return func(s *Service) {
		if i != nil {
			s.insights = i
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func New(conf Config, store objstore.Store, api PlaceAPI, opts ...Option) *Service {
	s := &Service{
		conf:     conf.withDefaults(),
		store:    store,
		api:      api,
		insights: noopInsights{},
		notifier: noopNotifier{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Config() Config {
	return s.conf
}

// Result is the outcome of one lookup inside a batch.
type Result struct {
	PlaceID string
	Record  domain.PlaceRecord
	Err     error
}

// GetPlace returns the cached record for placeID, fetching and caching it on a
// miss. An empty languageCode falls back to the configured one. The cache key
// does not depend on the language.
func (s *Service) GetPlace(ctx context.Context, placeID, languageCode string) (domain.PlaceRecord, error) {
	if strings.TrimSpace(placeID) == "" {
		return domain.PlaceRecord{}, domain.ErrEmptyPlaceID
	}

	l := ctxlogger.GetLogger(ctx).With("place_id", placeID)
	key := DataKey(placeID)

	obj, err := s.store.Download(ctx, key)
	switch {
	case err == nil:
		record, perr := domain.ParsePlaceRecord(obj.Body)
		if perr == nil {
			s.record(ctx, domain.KindPlace, domain.OutcomeHit)
			return record, nil
		}
		l.Warn("discarding malformed cached place", "key", key, "error", perr)
		s.record(ctx, domain.KindPlace, domain.OutcomeMalformed)
	case errors.Is(err, objstore.ErrNotFound):
	default:
		l.Warn("object store read failed, treating as miss", "key", key, "error", err)
		s.record(ctx, domain.KindPlace, domain.OutcomeStoreFailure)
	}

	s.record(ctx, domain.KindPlace, domain.OutcomeMiss)

	if languageCode == "" {
		languageCode = s.conf.LanguageCode
	}

	raw, err := s.api.PlaceDetails(ctx, placeID, languageCode)
	if err != nil {
		s.record(ctx, domain.KindPlace, domain.OutcomeUpstreamFailure)
		return domain.PlaceRecord{}, fmt.Errorf("fetch place %s: %w", placeID, err)
	}

	record, err := domain.ParsePlaceRecord(raw)
	if err != nil {
		s.record(ctx, domain.KindPlace, domain.OutcomeUpstreamFailure)
		return domain.PlaceRecord{}, fmt.Errorf("fetch place %s: %w", placeID, err)
	}

	s.populate(ctx, domain.KindPlace, key, raw, PlaceContentType)

	return record, nil
}

// LookupPlaces resolves every id independently with bounded concurrency.
// Results keep the input order; a failed lookup never cancels the others.
func (s *Service) LookupPlaces(ctx context.Context, placeIDs []string, languageCode string) []Result {
	results := make([]Result, len(placeIDs))

	var g errgroup.Group
	g.SetLimit(s.conf.Concurrency)

	for i, id := range placeIDs {
		g.Go(func() error {
			record, err := s.GetPlace(ctx, id, languageCode)
			results[i] = Result{PlaceID: id, Record: record, Err: err}
			return nil
		})
	}

	_ = g.Wait()

	return results
}

// GetPlaces returns the records that could be resolved. The result may be
// shorter than placeIDs; correlate by PlaceRecord.ID, not by position.
func (s *Service) GetPlaces(ctx context.Context, placeIDs []string, languageCode string) []domain.PlaceRecord {
	l := ctxlogger.GetLogger(ctx)

	results := s.LookupPlaces(ctx, placeIDs, languageCode)
	for _, r := range results {
		if r.Err != nil {
			l.Error("skipping place", "place_id", r.PlaceID, "error", r.Err)
		}
	}

	return Successes(results)
}

func Successes(results []Result) []domain.PlaceRecord {
	records := make([]domain.PlaceRecord, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			records = append(records, r.Record)
		}
	}

	return records
}

// GetPhoto returns the photo bytes for a photo reference. Unlike places, an
// upstream failure is returned to the caller.
func (s *Service) GetPhoto(ctx context.Context, photoReference string) (domain.PhotoMedia, error) {
	l := ctxlogger.GetLogger(ctx).With("photo_reference", photoReference)
	key := PhotoKey(photoReference)

	obj, err := s.store.Download(ctx, key)
	switch {
	case err == nil:
		s.record(ctx, domain.KindPhoto, domain.OutcomeHit)
		contentType := obj.ContentType
		if contentType == "" {
			contentType = domain.DefaultPhotoContentType
		}
		return domain.PhotoMedia{Body: obj.Body, ContentType: contentType, Hit: true}, nil
	case errors.Is(err, objstore.ErrNotFound):
	default:
		l.Warn("object store read failed, treating as miss", "key", key, "error", err)
		s.record(ctx, domain.KindPhoto, domain.OutcomeStoreFailure)
	}

	s.record(ctx, domain.KindPhoto, domain.OutcomeMiss)

	body, contentType, err := s.api.PhotoMedia(ctx, photoReference)
	if err != nil {
		s.record(ctx, domain.KindPhoto, domain.OutcomeUpstreamFailure)
		l.Error("photo fetch failed", "key", key, "error", err)
		s.notify(ctx, fetcher.Alert{
			Operation: "photo_fetch",
			Key:       key,
			Message:   "failed to fetch photo " + photoReference,
			Error:     err.Error(),
		})
		return domain.PhotoMedia{}, fmt.Errorf("fetch photo: %w", err)
	}

	if contentType == "" {
		contentType = domain.DefaultPhotoContentType
	}

	s.populate(ctx, domain.KindPhoto, key, body, contentType)

	return domain.PhotoMedia{Body: body, ContentType: contentType}, nil
}

// populate writes through to the store. Failures are reported but never
// returned; the caller already holds the fetched payload.
func (s *Service) populate(ctx context.Context, kind domain.CacheKind, key string, body []byte, contentType string) {
	err := s.store.Upload(ctx, key, body, objstore.UploadOptions{
		ContentType: contentType,
		MaxAge:      s.conf.TTL(),
		Upsert:      true,
	})
	if err == nil {
		return
	}

	ctxlogger.GetLogger(ctx).Error("object store write failed", "key", key, "error", err)
	s.record(ctx, kind, domain.OutcomeStoreFailure)
	s.notify(ctx, fetcher.Alert{
		Operation: "store_write",
		Key:       key,
		Message:   "failed to cache " + string(kind),
		Error:     err.Error(),
	})
}

func (s *Service) record(ctx context.Context, kind domain.CacheKind, outcome domain.Outcome) {
	if err := s.insights.Record(ctx, kind, outcome); err != nil {
		ctxlogger.GetLogger(ctx).Debug("failed to record insight", "kind", kind, "outcome", outcome, "error", err)
	}
}

func (s *Service) notify(ctx context.Context, alert fetcher.Alert) {
	if err := s.notifier.Notify(ctx, alert); err != nil {
		ctxlogger.GetLogger(ctx).Warn("notify failed", "operation", alert.Operation, "error", err)
	}
}

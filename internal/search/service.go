package search

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"travelbroker/pkg/amadeus"
	"travelbroker/pkg/cache"
	"travelbroker/pkg/logger"
)

// ProviderClient is the slice of the provider client this service needs.
type ProviderClient interface {
	FlightOffers(ctx context.Context, query url.Values) (*amadeus.Page, error)
	HotelOffers(ctx context.Context, query url.Values) (*amadeus.Page, error)
}

type Service struct {
	provider ProviderClient
	cache    cache.Cache
	ttl      time.Duration
	logger   logger.Client
}

// NewService builds the search service. cache may be nil, which disables
// response caching.
func NewService(provider ProviderClient, c cache.Cache, ttlMinutes int, log logger.Client) *Service {
	return &Service{
		provider: provider,
		cache:    c,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		logger:   log,
	}
}

func (s *Service) SearchFlights(ctx context.Context, q FlightQuery) (*FlightSearchResult, error) {
	query, err := q.Values()
	if err != nil {
		return nil, err
	}

	cacheKey := s.cacheKey("flight", query)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		var result FlightSearchResult
		if cacheErr := json.Unmarshal([]byte(cached), &result); cacheErr != nil {
			s.logger.Error("failed to unmarshal cached flight result", logger.Field{Key: "err", Value: cacheErr})
		} else {
			result.Metadata.CacheHit = true
			result.Metadata.CacheKey = cacheKey
			return &result, nil
		}
	}

	startTime := time.Now()
	page, err := s.provider.FlightOffers(ctx, query)
	if err != nil {
		return nil, err
	}

	offers := NormalizeFlightOffers(page.Data, q.TravelClass)
	result := &FlightSearchResult{
		Metadata: Metadata{
			TotalResults: uint32(len(offers)),
			SearchTimeMs: uint32(time.Since(startTime).Milliseconds()),
			CacheKey:     cacheKey,
		},
		FlightOffers: offers,
		Raw:          page.Raw,
	}

	s.store(ctx, cacheKey, result)
	return result, nil
}

func (s *Service) SearchHotels(ctx context.Context, q HotelQuery) (*HotelSearchResult, error) {
	query, err := q.Values()
	if err != nil {
		return nil, err
	}

	cacheKey := s.cacheKey("hotel", query)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		var result HotelSearchResult
		if cacheErr := json.Unmarshal([]byte(cached), &result); cacheErr != nil {
			s.logger.Error("failed to unmarshal cached hotel result", logger.Field{Key: "err", Value: cacheErr})
		} else {
			result.Metadata.CacheHit = true
			result.Metadata.CacheKey = cacheKey
			return &result, nil
		}
	}

	startTime := time.Now()
	page, err := s.provider.HotelOffers(ctx, query)
	if err != nil {
		return nil, err
	}

	offers := NormalizeHotelOffers(page.Data)
	result := &HotelSearchResult{
		Metadata: Metadata{
			TotalResults: uint32(len(offers)),
			SearchTimeMs: uint32(time.Since(startTime).Milliseconds()),
			CacheKey:     cacheKey,
		},
		Hotels: offers,
		Raw:    page.Raw,
	}

	s.store(ctx, cacheKey, result)
	return result, nil
}

// cacheKey derives a deterministic key from the encoded provider query, so
// queries that normalize identically share an entry.
func (s *Service) cacheKey(kind string, query url.Values) string {
	hash := sha256.Sum256([]byte(query.Encode()))
	return fmt.Sprintf("%s:search:%x", kind, hash[:16])
}

func (s *Service) fromCache(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil || cached == "" {
		return "", false
	}
	s.logger.Debug("cache hit for search", logger.Field{Key: "cache_key", Value: key})
	return cached, true
}

func (s *Service) store(ctx context.Context, key string, result any) {
	if s.cache == nil {
		return
	}
	resultBytes, err := json.Marshal(result)
	if err != nil {
		s.logger.Error("failed to marshal search result for caching", logger.Field{Key: "err", Value: err})
		return
	}
	if err := s.cache.Set(ctx, key, string(resultBytes), s.ttl); err != nil {
		s.logger.Error("failed to cache search result",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "cache_key", Value: key},
		)
	}
}

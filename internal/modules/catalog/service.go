package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kejastays/internal/domain"
	"kejastays/internal/repository"

	"github.com/jellydator/ttlcache/v3"
)

var ErrValidation = errors.New("validation error")

const listCacheTTL = 60 * time.Second

// PropertyRepository defines the storage operations the catalog needs.
type PropertyRepository interface {
	GetAll(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) error
	GetImages(ctx context.Context, propertyID int64) ([]domain.PropertyImage, error)
}

type Service struct {
	properties PropertyRepository
	listCache  *ttlcache.Cache[string, []domain.Property]
}

func NewService(properties PropertyRepository) *Service {
	cache := ttlcache.New[string, []domain.Property](
		ttlcache.WithTTL[string, []domain.Property](listCacheTTL),
		ttlcache.WithDisableTouchOnHit[string, []domain.Property](),
	)
	go cache.Start()

	return &Service{
		properties: properties,
		listCache:  cache,
	}
}

// GetProperties returns active properties for the given filters, each
// with its gallery grouped by category. Lists are cached briefly; the
// catalog changes through seeding, not user traffic.
func (s *Service) GetProperties(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, error) {
	key := cacheKey(f)
	if item := s.listCache.Get(key); item != nil {
		return item.Value(), nil
	}

	props, err := s.properties.GetAll(ctx, f)
	if err != nil {
		return nil, err
	}

	for i := range props {
		rows, err := s.properties.GetImages(ctx, props[i].ID)
		if err != nil {
			return nil, err
		}
		props[i].CategorizedImages = GroupImages(rows)
	}

	s.listCache.Set(key, props, ttlcache.DefaultTTL)
	return props, nil
}

// GetProperty fetches one active property with its grouped gallery.
// Soft-deleted and unknown ids both surface as gorm.ErrRecordNotFound.
func (s *Service) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.properties.GetImages(ctx, id)
	if err != nil {
		return nil, err
	}
	p.CategorizedImages = GroupImages(rows)

	return p, nil
}

func (s *Service) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*domain.Property, error) {
	if req.PricePerNight <= 0 {
		return nil, ErrValidation
	}

	p := &domain.Property{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		ImageURL:      req.ImageURL,
		Images:        req.Images,
		Amenities:     req.Amenities,
		Featured:      req.Featured,
		Category:      req.Category,
		IsActive:      true,
	}

	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}

	s.listCache.DeleteAll()
	return p, nil
}

// GroupImages folds flat gallery rows into named categories. Category
// order is first-seen row order; images keep row order within their
// category. An empty category label is a legal group key.
func GroupImages(rows []domain.PropertyImage) []domain.ImageCategory {
	groups := make([]domain.ImageCategory, 0)
	index := make(map[string]int)

	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(groups)
			index[row.Category] = i
			groups = append(groups, domain.ImageCategory{Category: row.Category})
		}
		groups[i].Images = append(groups[i].Images, row.ImageURL)
	}

	return groups
}

func cacheKey(f repository.PropertyFilters) string {
	featured := "any"
	if f.Featured != nil {
		featured = fmt.Sprintf("%t", *f.Featured)
	}
	return f.Category + "|" + featured
}

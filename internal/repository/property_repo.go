package repository

import (
	"context"
	"encoding/json"
	"time"

	"kejastays/internal/domain"

	"gorm.io/gorm"
)

type PropertyFilters struct {
	Category string
	Featured *bool
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// images and amenities are stored as JSON text so the same model works
// on postgres and the sqlite dev database.
type propertyModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Description   string    `gorm:"column:description;type:text"`
	Location      string    `gorm:"column:location"`
	PricePerNight float64   `gorm:"column:price_per_night"`
	MaxGuests     int       `gorm:"column:max_guests"`
	Bedrooms      int       `gorm:"column:bedrooms"`
	ImageURL      string    `gorm:"column:image_url"`
	Images        []byte    `gorm:"column:images;type:text"`
	Amenities     []byte    `gorm:"column:amenities;type:text"`
	Featured      bool      `gorm:"column:featured"`
	Category      string    `gorm:"column:category;index"`
	IsActive      bool      `gorm:"column:is_active;index"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (propertyModel) TableName() string { return "properties" }

type propertyImageModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	PropertyID int64  `gorm:"column:property_id;index"`
	Category   string `gorm:"column:category"`
	ImageURL   string `gorm:"column:image_url;type:text"`
}

func (propertyImageModel) TableName() string { return "property_images" }

func toDomainProperty(m propertyModel) *domain.Property {
	var images, amenities []string
	if len(m.Images) > 0 {
		_ = json.Unmarshal(m.Images, &images)
	}
	if len(m.Amenities) > 0 {
		_ = json.Unmarshal(m.Amenities, &amenities)
	}

	return &domain.Property{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Location:      m.Location,
		PricePerNight: m.PricePerNight,
		MaxGuests:     m.MaxGuests,
		Bedrooms:      m.Bedrooms,
		ImageURL:      m.ImageURL,
		Images:        images,
		Amenities:     amenities,
		Featured:      m.Featured,
		Category:      m.Category,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toPropertyModel(p *domain.Property) propertyModel {
	images, _ := json.Marshal(p.Images)
	amenities, _ := json.Marshal(p.Amenities)

	return propertyModel{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		PricePerNight: p.PricePerNight,
		MaxGuests:     p.MaxGuests,
		Bedrooms:      p.Bedrooms,
		ImageURL:      p.ImageURL,
		Images:        images,
		Amenities:     amenities,
		Featured:      p.Featured,
		Category:      p.Category,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// GetAll returns active properties, optionally narrowed by category
// first and featured second. Row order is whatever the database kept.
func (r *PropertyRepository) GetAll(ctx context.Context, f PropertyFilters) ([]domain.Property, error) {
	q := r.db.WithContext(ctx).
		Model(&propertyModel{}).
		Where("is_active = ?", true)

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}

	var rows []propertyModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Property, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainProperty(m))
	}
	return out, nil
}

// GetByID fetches one active property. Soft-deleted rows look exactly
// like missing ones to callers.
func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var m propertyModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainProperty(m), nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	m := toPropertyModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProperty(m)
	return nil
}

// GetImages returns a property's gallery rows in insertion order.
func (r *PropertyRepository) GetImages(ctx context.Context, propertyID int64) ([]domain.PropertyImage, error) {
	var rows []propertyImageModel
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.PropertyImage, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.PropertyImage{
			ID:         m.ID,
			PropertyID: m.PropertyID,
			Category:   m.Category,
			ImageURL:   m.ImageURL,
		})
	}
	return out, nil
}

func (r *PropertyRepository) AddImage(ctx context.Context, img *domain.PropertyImage) error {
	m := propertyImageModel{
		PropertyID: img.PropertyID,
		Category:   img.Category,
		ImageURL:   img.ImageURL,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	img.ID = m.ID
	return nil
}

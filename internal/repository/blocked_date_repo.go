package repository

import (
	"context"
	"time"

	"kejastays/internal/domain"

	"gorm.io/gorm"
)

type BlockedDateRepository struct {
	db *gorm.DB
}

func NewBlockedDateRepository(db *gorm.DB) *BlockedDateRepository {
	return &BlockedDateRepository{db: db}
}

type blockedDateModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	PropertyID int64     `gorm:"column:property_id;index"`
	StartDate  time.Time `gorm:"column:start_date"`
	EndDate    time.Time `gorm:"column:end_date"`
	Reason     string    `gorm:"column:reason"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (blockedDateModel) TableName() string { return "blocked_dates" }

func toDomainBlockedDate(m blockedDateModel) domain.BlockedDate {
	return domain.BlockedDate{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Reason:     domain.BlockReason(m.Reason),
		CreatedAt:  m.CreatedAt,
	}
}

// GetInWindow returns manual blocks overlapping [from, to]. Zero
// endpoints leave that side of the window open.
func (r *BlockedDateRepository) GetInWindow(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.BlockedDate, error) {
	q := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID)

	if !from.IsZero() {
		q = q.Where("end_date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("start_date <= ?", to)
	}

	var rows []blockedDateModel
	if err := q.Order("start_date").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.BlockedDate, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBlockedDate(m))
	}
	return out, nil
}

func (r *BlockedDateRepository) Create(ctx context.Context, b *domain.BlockedDate) error {
	m := blockedDateModel{
		PropertyID: b.PropertyID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Reason:     string(b.Reason),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	return nil
}

package repository

import (
	"context"
	"time"

	"kejastays/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type contactMessageModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	FirstName        string    `gorm:"column:first_name"`
	LastName         string    `gorm:"column:last_name"`
	Email            string    `gorm:"column:email"`
	Phone            *string   `gorm:"column:phone"`
	PropertyInterest *string   `gorm:"column:property_interest"`
	Message          string    `gorm:"column:message;type:text"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (contactMessageModel) TableName() string { return "contact_messages" }

func toDomainContactMessage(m contactMessageModel) *domain.ContactMessage {
	msg := &domain.ContactMessage{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
	if m.Phone != nil {
		msg.Phone = *m.Phone
	}
	if m.PropertyInterest != nil {
		msg.PropertyInterest = *m.PropertyInterest
	}
	return msg
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	m := contactMessageModel{
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
		Email:     msg.Email,
		Message:   msg.Message,
	}
	if msg.Phone != "" {
		m.Phone = &msg.Phone
	}
	if msg.PropertyInterest != "" {
		m.PropertyInterest = &msg.PropertyInterest
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*msg = *toDomainContactMessage(m)
	return nil
}

func (r *ContactRepository) GetAll(ctx context.Context) ([]domain.ContactMessage, error) {
	var rows []contactMessageModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.ContactMessage, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainContactMessage(m))
	}
	return out, nil
}

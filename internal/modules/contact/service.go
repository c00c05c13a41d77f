package contact

import (
	"context"
	"errors"

	"kejastays/internal/domain"
	"kejastays/internal/pkg/validator"

	"github.com/rs/zerolog"
)

var ErrValidation = errors.New("validation error")

type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	GetAll(ctx context.Context) ([]domain.ContactMessage, error)
}

type Service struct {
	messages ContactRepository
	log      zerolog.Logger
}

func NewService(messages ContactRepository, log zerolog.Logger) *Service {
	return &Service{messages: messages, log: log}
}

func (s *Service) CreateMessage(ctx context.Context, req CreateMessageRequest) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		PropertyInterest: req.PropertyInterest,
		Message:          req.Message,
	}

	if fields := validator.Validate(msg); fields != nil {
		return nil, ErrValidation
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("message_id", msg.ID).
		Str("property_interest", msg.PropertyInterest).
		Msg("contact message received")

	return msg, nil
}

func (s *Service) GetMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.GetAll(ctx)
}

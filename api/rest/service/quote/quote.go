// Package quote captures public quote requests submitted before any
// job or company record exists.
package quote

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/metrics"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/db"
	"github.com/shopops-cloud/shopops/pkg/jsonmap"
	"gorm.io/gorm"
)

// ErrMissingFields is returned when a quote request lacks the
// company name or a contact email.
var ErrMissingFields = errors.New("company and email are required")

type Quote interface {
	WithDatabase(*gorm.DB) Quote
	List(*ListRequest) (models.Quotes, int64, error)
	Create(*CreateRequest) (*models.Quote, error)
}

type quoteService struct {
	ctx context.Context
	db  *gorm.DB
}

func Service(ctx context.Context) Quote {
	return &quoteService{
		ctx: ctx,
		db:  db.Connection(),
	}
}

func (s *quoteService) WithDatabase(conn *gorm.DB) Quote {
	s.db = conn
	return s
}

type ListRequest struct {
	Limit   uint64
	Offset  uint64
	OrderBy []string
}

func (s *quoteService) List(req *ListRequest) (models.Quotes, int64, error) {
	var (
		quotes = make(models.Quotes, 0)
		total  int64
		q      = s.db.WithContext(s.ctx).Model(&models.Quote{})
	)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, orderBy := range req.OrderBy {
		q = q.Order(orderBy)
	}

	if req.Limit > 0 {
		q = q.Limit(int(req.Limit))
	}

	if req.Offset > 0 {
		q = q.Offset(int(req.Offset))
	}

	return quotes, total, q.Find(&quotes).Error
}

type CreateRequest struct {
	Company string            `json:"company"`
	Contact string            `json:"contact,omitempty"`
	Email   string            `json:"email"`
	Phone   string            `json:"phone,omitempty"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (s *quoteService) Create(req *CreateRequest) (*models.Quote, error) {
	if req.Company == "" || req.Email == "" {
		return nil, ErrMissingFields
	}

	quote := &models.Quote{
		ID:      uuid.New(),
		Company: req.Company,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
		Details: req.Details,
		Fields:  jsonmap.FromStringMap(req.Fields),
	}

	if err := s.db.WithContext(s.ctx).Create(quote).Error; err != nil {
		return nil, err
	}

	metrics.QuoteRequestsTotal.Inc()

	return quote, nil
}

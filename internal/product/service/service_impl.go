package service

import (
	"context"
	"errors"
	"strings"

	"github.com/fakunet/backoffice/internal/observability/metrics"
	"github.com/fakunet/backoffice/internal/product/domain"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Store   store.Collection[domain.Product]
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	store   store.Collection[domain.Product]
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("product.service"),
		store:   p.Store,
		metrics: p.Metrics,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	_ = ctx
	return s.store.GetAll()
}

func (s *Service) Get(ctx context.Context, code string) (*domain.Product, error) {
	_ = ctx
	item, err := s.store.Find(func(p domain.Product) bool { return p.Code == code })
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Product, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, domain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if strings.TrimSpace(req.Brand) == "" {
		return nil, domain.ErrInvalidBrand
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, domain.ErrInvalidCategory
	}

	existing, err := s.store.Find(func(p domain.Product) bool { return p.Code == code })
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCodeExists
	}

	features := req.Features
	if features == nil {
		features = domain.FeatureList{}
	}

	product := domain.Product{
		Code:            code,
		Name:            name,
		Brand:           req.Brand,
		Category:        req.Category,
		Description:     req.Description,
		Features:        features,
		Stock:           req.Stock,
		WhatsappMessage: domain.WhatsappMessage(name, code),
		ImageURL:        req.ImageURL,
		PDFURL:          req.PDFURL,
		Active:          true,
	}
	created, err := s.store.Add(product)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordCollectionWrite(ctx, "products", "add")
	return &created, nil
}

func (s *Service) Update(ctx context.Context, code string, req domain.UpdateRequest) (*domain.Product, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, domain.ErrInvalidName
	}

	updated, err := s.store.Update(
		func(p domain.Product) bool { return p.Code == code },
		func(p domain.Product) domain.Product {
			if req.Name != nil {
				p.Name = strings.TrimSpace(*req.Name)
			}
			if req.Brand != nil {
				p.Brand = *req.Brand
			}
			if req.Category != nil {
				p.Category = *req.Category
			}
			if req.Description != nil {
				p.Description = *req.Description
			}
			if req.Features != nil {
				p.Features = *req.Features
			}
			if req.Stock != nil {
				p.Stock = *req.Stock
			}
			if req.ImageURL != nil {
				p.ImageURL = *req.ImageURL
			}
			if req.PDFURL != nil {
				p.PDFURL = *req.PDFURL
			}
			if req.Active != nil {
				p.Active = *req.Active
			}
			// the code is the key and never changes; the contact text
			// follows the stored name and code
			p.WhatsappMessage = domain.WhatsappMessage(p.Name, p.Code)
			return p
		},
	)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.metrics.RecordCollectionWrite(ctx, "products", "update")
	return &updated, nil
}

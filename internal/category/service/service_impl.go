package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fakunet/backoffice/internal/category/domain"
	"github.com/fakunet/backoffice/internal/observability/metrics"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Store   store.Collection[domain.Category]
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	store   store.Collection[domain.Category]
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("category.service"),
		genID:   p.GenID,
		store:   p.Store,
		metrics: p.Metrics,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	_ = ctx
	return s.store.GetAll()
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	category := domain.Category{
		ID:     s.genID.Generate().String(),
		Name:   name,
		Active: true,
	}
	created, err := s.store.Add(category)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordCollectionWrite(ctx, "categories", "add")
	return &created, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*domain.Category, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, domain.ErrInvalidName
	}

	updated, err := s.store.Update(
		func(c domain.Category) bool { return c.ID == id },
		func(c domain.Category) domain.Category {
			if req.Name != nil {
				c.Name = strings.TrimSpace(*req.Name)
			}
			if req.Active != nil {
				c.Active = *req.Active
			}
			return c
		},
	)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.metrics.RecordCollectionWrite(ctx, "categories", "update")
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	removed, err := s.store.Delete(func(c domain.Category) bool { return c.ID == id })
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	s.metrics.RecordCollectionWrite(ctx, "categories", "delete")
	return nil
}

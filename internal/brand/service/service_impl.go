package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fakunet/backoffice/internal/brand/domain"
	"github.com/fakunet/backoffice/internal/observability/metrics"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Store   store.Collection[domain.Brand]
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	store   store.Collection[domain.Brand]
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("brand.service"),
		genID:   p.GenID,
		store:   p.Store,
		metrics: p.Metrics,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Brand, error) {
	_ = ctx
	return s.store.GetAll()
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	brand := domain.Brand{
		ID:     s.genID.Generate().String(),
		Name:   name,
		Active: true,
	}
	created, err := s.store.Add(brand)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordCollectionWrite(ctx, "brands", "add")
	return &created, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*domain.Brand, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, domain.ErrInvalidName
	}

	updated, err := s.store.Update(
		func(b domain.Brand) bool { return b.ID == id },
		func(b domain.Brand) domain.Brand {
			if req.Name != nil {
				b.Name = strings.TrimSpace(*req.Name)
			}
			if req.Active != nil {
				b.Active = *req.Active
			}
			return b
		},
	)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.metrics.RecordCollectionWrite(ctx, "brands", "update")
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	removed, err := s.store.Delete(func(b domain.Brand) bool { return b.ID == id })
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	s.metrics.RecordCollectionWrite(ctx, "brands", "delete")
	return nil
}

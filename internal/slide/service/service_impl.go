package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fakunet/backoffice/internal/observability/metrics"
	"github.com/fakunet/backoffice/internal/slide/domain"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Store   store.Collection[domain.Slide]
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	store   store.Collection[domain.Slide]
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("slide.service"),
		genID:   p.GenID,
		store:   p.Store,
		metrics: p.Metrics,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Slide, error) {
	_ = ctx
	return s.store.GetAll()
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Slide, error) {
	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		return nil, domain.ErrInvalidImageURL
	}

	slide := domain.Slide{
		ID:       s.genID.Generate().String(),
		ImageURL: imageURL,
		Active:   true,
	}
	created, err := s.store.Add(slide)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordCollectionWrite(ctx, "slider", "add")
	return &created, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	removed, err := s.store.Delete(func(sl domain.Slide) bool { return sl.ID == id })
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	s.metrics.RecordCollectionWrite(ctx, "slider", "delete")
	return nil
}

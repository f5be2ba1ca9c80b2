package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fakunet/backoffice/internal/message/domain"
	"github.com/fakunet/backoffice/internal/observability/metrics"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Store   store.Collection[domain.Message]
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	store   store.Collection[domain.Message]
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("message.service"),
		genID:   p.GenID,
		store:   p.Store,
		metrics: p.Metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Message, error) {
	_ = ctx
	items, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Message, error) {
	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Content) == "" {
		return nil, domain.ErrMissingFields
	}

	message := domain.Message{
		ID:        s.genID.Generate().String(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Content:   req.Content,
		Date:      s.now(),
		Read:      false,
	}
	created, err := s.store.Add(message)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordContactMessage(ctx)
	s.metrics.RecordCollectionWrite(ctx, "messages", "add")
	return &created, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) (*domain.Message, error) {
	updated, err := s.store.Update(
		func(m domain.Message) bool { return m.ID == id },
		func(m domain.Message) domain.Message {
			m.Read = true
			return m
		},
	)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.metrics.RecordCollectionWrite(ctx, "messages", "update")
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	removed, err := s.store.Delete(func(m domain.Message) bool { return m.ID == id })
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	s.metrics.RecordCollectionWrite(ctx, "messages", "delete")
	return nil
}

package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/fakunet/backoffice/internal/slide/domain"
	"github.com/fakunet/backoffice/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (domain.Service, *store.Memory[domain.Slide]) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	mem := store.NewMemory[domain.Slide]()
	return New(Params{Log: zap.NewNop(), GenID: node, Store: mem}), mem
}

func TestCreateRequiresImageURL(t *testing.T) {
	svc, mem := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{ImageURL: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidImageURL)

	items, _ := mem.GetAll()
	assert.Empty(t, items)
}

func TestCreateAndDeleteSlide(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{ImageURL: "/uploads/banner.jpg"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fakunet/backoffice/internal/message/domain"
	"github.com/fakunet/backoffice/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, items ...domain.Message) (*Service, *store.Memory[domain.Message]) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	mem := store.NewMemory(items...)
	svc := New(Params{Log: zap.NewNop(), GenID: node, Store: mem}).(*Service)
	return svc, mem
}

func TestCreateStampsDateAndUnread(t *testing.T) {
	svc, _ := newTestService(t)
	stamp := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	created, err := svc.Create(context.Background(), domain.CreateRequest{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Content:   "Hola, quiero información",
	})
	require.NoError(t, err)
	assert.Equal(t, stamp, created.Date)
	assert.False(t, created.Read)
	assert.NotEmpty(t, created.ID)
}

func TestCreateRequiresNameEmailAndContent(t *testing.T) {
	tests := []struct {
		name string
		req  domain.CreateRequest
	}{
		{"missing first name", domain.CreateRequest{Email: "a@b.com", Content: "hola"}},
		{"missing email", domain.CreateRequest{FirstName: "Ana", Content: "hola"}},
		{"missing content", domain.CreateRequest{FirstName: "Ana", Email: "a@b.com"}},
		{"blank content", domain.CreateRequest{FirstName: "Ana", Email: "a@b.com", Content: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mem := newTestService(t)
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrMissingFields)

			items, _ := mem.GetAll()
			assert.Empty(t, items)
		})
	}
}

func TestListSortsNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t,
		domain.Message{ID: "old", Date: base},
		domain.Message{ID: "newest", Date: base.Add(48 * time.Hour)},
		domain.Message{ID: "middle", Date: base.Add(24 * time.Hour)},
	)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "newest", items[0].ID)
	assert.Equal(t, "middle", items[1].ID)
	assert.Equal(t, "old", items[2].ID)
}

func TestMarkReadIsOneWay(t *testing.T) {
	svc, _ := newTestService(t, domain.Message{ID: "1", Read: false})

	updated, err := svc.MarkRead(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, updated.Read)

	// marking an already read message keeps it read
	again, err := svc.MarkRead(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, again.Read)
}

func TestMarkReadUnknownID(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.MarkRead(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteMessage(t *testing.T) {
	svc, mem := newTestService(t, domain.Message{ID: "1"})

	require.NoError(t, svc.Delete(context.Background(), "1"))
	items, _ := mem.GetAll()
	assert.Empty(t, items)

	assert.ErrorIs(t, svc.Delete(context.Background(), "1"), domain.ErrNotFound)
}

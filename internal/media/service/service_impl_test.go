package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fakunet/backoffice/internal/config"
	"github.com/fakunet/backoffice/internal/media/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (domain.Service, string) {
	t.Helper()
	root := t.TempDir()
	svc := New(Params{
		Cfg:      config.Config{UploadDir: root},
		Settings: config.NewStaticMediaSettingsHolder(config.DefaultMediaSettings()),
		Log:      zap.NewNop(),
	})
	return svc, root
}

func TestUploadWritesFileAndReturnsPublicURL(t *testing.T) {
	svc, root := newTestService(t)

	result, err := svc.Upload(context.Background(), domain.UploadRequest{
		Filename:    "Photo.JPG",
		ContentType: "image/jpeg",
		Data:        []byte("fake-jpeg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "photo.jpg", result.Filename)
	assert.Equal(t, "/uploads/photo.jpg", result.URL)

	data, err := os.ReadFile(filepath.Join(root, "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-jpeg"), data)
}

func TestUploadResolvesNameCollisions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	upload := func() string {
		result, err := svc.Upload(ctx, domain.UploadRequest{
			Filename:    "photo.jpg",
			ContentType: "image/jpeg",
			Data:        []byte("x"),
		})
		require.NoError(t, err)
		return result.Filename
	}

	assert.Equal(t, "photo.jpg", upload())
	assert.Equal(t, "photo-1.jpg", upload())
	assert.Equal(t, "photo-2.jpg", upload())
}

func TestUploadRejectsDisallowedContentType(t *testing.T) {
	svc, root := newTestService(t)

	_, err := svc.Upload(context.Background(), domain.UploadRequest{
		Filename:    "script.sh",
		ContentType: "application/x-sh",
		Data:        []byte("#!/bin/sh"),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	root := t.TempDir()
	svc := New(Params{
		Cfg: config.Config{UploadDir: root},
		Settings: config.NewStaticMediaSettingsHolder(config.MediaSettings{
			AllowedTypes:   []string{"image/jpeg"},
			MaxUploadBytes: 4,
		}),
		Log: zap.NewNop(),
	})

	_, err := svc.Upload(context.Background(), domain.UploadRequest{
		Filename:    "big.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("12345"),
	})
	assert.ErrorIs(t, err, domain.ErrTooLarge)
}

func TestUploadRejectsEmptyRequest(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Upload(context.Background(), domain.UploadRequest{ContentType: "image/jpeg"})
	assert.ErrorIs(t, err, domain.ErrNoFile)

	_, err = svc.Upload(context.Background(), domain.UploadRequest{Filename: "a.jpg", ContentType: "image/jpeg"})
	assert.ErrorIs(t, err, domain.ErrNoFile)
}

func TestUploadSlugifiesHostileNames(t *testing.T) {
	svc, root := newTestService(t)

	result, err := svc.Upload(context.Background(), domain.UploadRequest{
		Filename:    "../../etc/Mi Foto Ñoña.PNG",
		ContentType: "image/png",
		Data:        []byte("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, "mi-foto-nona.png", result.Filename)

	_, statErr := os.Stat(filepath.Join(root, "mi-foto-nona.png"))
	assert.NoError(t, statErr)
}

func TestDeleteStripsDirectoryComponents(t *testing.T) {
	svc, root := newTestService(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "passwd"), []byte("x"), 0o644))

	// only the base name is honored, the traversal goes nowhere
	require.NoError(t, svc.Delete(context.Background(), "../../etc/passwd"))

	_, err := os.Stat(filepath.Join(root, "passwd"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteUnknownFile(t *testing.T) {
	svc, _ := newTestService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing.jpg"), domain.ErrNotFound)
}

func TestListSkipsDirectoriesAndSortsNewestFirst(t *testing.T) {
	svc, root := newTestService(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))

	older := filepath.Join(root, "older.jpg")
	newer := filepath.Join(root, "newer.jpg")
	require.NoError(t, os.WriteFile(older, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(newer, []byte("x"), 0o644))

	now := time.Now()
	require.NoError(t, os.Chtimes(older, now.Add(-time.Hour), now.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(newer, now, now))

	files, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "newer.jpg", files[0].Name)
	assert.Equal(t, "older.jpg", files[1].Name)
	assert.Equal(t, "/uploads/newer.jpg", files[0].URL)
}

func TestListMissingDirectoryIsEmpty(t *testing.T) {
	svc := New(Params{
		Cfg:      config.Config{UploadDir: filepath.Join(t.TempDir(), "never-created")},
		Settings: config.NewStaticMediaSettingsHolder(config.DefaultMediaSettings()),
		Log:      zap.NewNop(),
	})

	files, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}

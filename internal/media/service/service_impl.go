package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fakunet/backoffice/internal/config"
	"github.com/fakunet/backoffice/internal/media/domain"
	"github.com/fakunet/backoffice/internal/observability/metrics"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const publicPrefix = "/uploads/"

type Params struct {
	fx.In

	Cfg      config.Config
	Settings *config.MediaSettingsHolder
	Log      *zap.Logger
	Metrics  *metrics.Metrics `optional:"true"`
}

type Service struct {
	root     string
	settings *config.MediaSettingsHolder
	log      *zap.Logger
	metrics  *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		root:     p.Cfg.UploadDir,
		settings: p.Settings,
		log:      p.Log.Named("media.service"),
		metrics:  p.Metrics,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.FileInfo, error) {
	_ = ctx
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.FileInfo{}, nil
		}
		return nil, fmt.Errorf("read upload dir: %w", err)
	}

	files := make([]domain.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.log.Warn("stat upload", zap.String("name", entry.Name()), zap.Error(err))
			continue
		}
		files = append(files, domain.FileInfo{
			Name: entry.Name(),
			URL:  publicPrefix + entry.Name(),
			Size: info.Size(),
			Date: info.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Date.After(files[j].Date)
	})
	return files, nil
}

func (s *Service) Upload(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	if req.Filename == "" || len(req.Data) == 0 {
		return nil, domain.ErrNoFile
	}

	settings := s.settings.Get()
	if !settings.Allows(req.ContentType) {
		return nil, domain.ErrUnsupportedType
	}
	if int64(len(req.Data)) > settings.MaxUploadBytes {
		return nil, domain.ErrTooLarge
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	filename, err := s.resolveName(req.Filename)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(s.root, filename), req.Data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	s.metrics.RecordMediaUpload(ctx, req.ContentType)
	return &domain.UploadResult{
		Filename: filename,
		URL:      publicPrefix + filename,
	}, nil
}

func (s *Service) Delete(ctx context.Context, filename string) error {
	_ = ctx
	// drop any directory components before resolving inside the root
	safe := filepath.Base(strings.TrimSpace(filename))
	if safe == "" || safe == "." || safe == string(filepath.Separator) {
		return domain.ErrNotFound
	}

	if err := os.Remove(filepath.Join(s.root, safe)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}

// resolveName slugifies the client-supplied name and, when taken, appends
// the smallest free numeric suffix before the extension: photo.jpg,
// photo-1.jpg, photo-2.jpg, ...
func (s *Service) resolveName(original string) (string, error) {
	base := filepath.Base(original)
	ext := strings.ToLower(filepath.Ext(base))
	name := slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		name = "file"
	}

	candidate := name + ext
	for counter := 1; ; counter++ {
		_, err := os.Stat(filepath.Join(s.root, candidate))
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat upload: %w", err)
		}
		candidate = fmt.Sprintf("%s-%d%s", name, counter, ext)
	}
}

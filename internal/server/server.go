package server

import (
	"context"
	"net/http"
	"time"

	analyticsdomain "github.com/fakunet/backoffice/internal/analytics/domain"
	"github.com/fakunet/backoffice/internal/auth/session"
	branddomain "github.com/fakunet/backoffice/internal/brand/domain"
	categorydomain "github.com/fakunet/backoffice/internal/category/domain"
	"github.com/fakunet/backoffice/internal/config"
	mediadomain "github.com/fakunet/backoffice/internal/media/domain"
	messagedomain "github.com/fakunet/backoffice/internal/message/domain"
	"github.com/fakunet/backoffice/internal/observability"
	obslogger "github.com/fakunet/backoffice/internal/observability/logger"
	productdomain "github.com/fakunet/backoffice/internal/product/domain"
	slidedomain "github.com/fakunet/backoffice/internal/slide/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(RunHTTP),
)

func NewEngine(obsCfg observability.Config, log *zap.Logger) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log, obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	sessions   *session.Manager
	brandSvc   branddomain.Service
	catSvc     categorydomain.Service
	productSvc productdomain.Service
	slideSvc   slidedomain.Service
	messageSvc messagedomain.Service
	mediaSvc   mediadomain.Service
	anaCfgSvc  analyticsdomain.ConfigService
	anaSumSvc  analyticsdomain.SummaryService
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Sessions   *session.Manager
	BrandSvc   branddomain.Service
	CatSvc     categorydomain.Service
	ProductSvc productdomain.Service
	SlideSvc   slidedomain.Service
	MessageSvc messagedomain.Service
	MediaSvc   mediadomain.Service
	AnaCfgSvc  analyticsdomain.ConfigService
	AnaSumSvc  analyticsdomain.SummaryService
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		sessions:   p.Sessions,
		brandSvc:   p.BrandSvc,
		catSvc:     p.CatSvc,
		productSvc: p.ProductSvc,
		slideSvc:   p.SlideSvc,
		messageSvc: p.MessageSvc,
		mediaSvc:   p.MediaSvc,
		anaCfgSvc:  p.AnaCfgSvc,
		anaSumSvc:  p.AnaSumSvc,
	}
}

// RegisterRoutes wires the public and admin API surface. List endpoints and
// contact-message creation stay open because the public site consumes them;
// every mutating route sits behind the session cookie.
func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api")

	api.POST("/auth/login", s.Login)
	api.POST("/auth/logout", s.Logout)

	api.GET("/brands", s.ListBrands)
	api.GET("/categories", s.ListCategories)
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProduct)
	api.GET("/slider", s.ListSlides)
	api.POST("/messages", s.CreateMessage)

	admin := api.Group("", s.AuthRequired())
	admin.POST("/brands", s.CreateBrand)
	admin.PUT("/brands/:id", s.UpdateBrand)
	admin.DELETE("/brands/:id", s.DeleteBrand)

	admin.POST("/categories", s.CreateCategory)
	admin.PUT("/categories/:id", s.UpdateCategory)
	admin.DELETE("/categories/:id", s.DeleteCategory)

	admin.POST("/products", s.CreateProduct)
	admin.PUT("/products/:id", s.UpdateProduct)

	admin.POST("/slider", s.CreateSlide)
	admin.DELETE("/slider/:id", s.DeleteSlide)

	admin.GET("/messages", s.ListMessages)
	admin.PUT("/messages/:id", s.UpdateMessage)
	admin.DELETE("/messages/:id", s.DeleteMessage)

	admin.GET("/media", s.ListMedia)
	admin.POST("/media/upload", s.UploadMedia)
	admin.POST("/media/delete", s.DeleteMedia)

	admin.GET("/analytics/config", s.GetAnalyticsConfig)
	admin.POST("/analytics/config", s.SaveAnalyticsConfig)
	admin.GET("/analytics/summary", s.GetAnalyticsSummary)

	// uploaded media is public-servable by design
	s.engine.Static("/uploads", s.cfg.UploadDir)
}

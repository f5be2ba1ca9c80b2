package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fakunet/backoffice/internal/analytics/domain"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type SummaryParams struct {
	fx.In

	Log   *zap.Logger
	Store store.Single[domain.Config]
}

// SummaryService produces the dashboard summary. Numbers are simulated until
// the GA4 Data API integration lands; the credential store is already in
// place for it.
type SummaryService struct {
	log   *zap.Logger
	store store.Single[domain.Config]
	now   func() time.Time
}

func NewSummary(p SummaryParams) domain.SummaryService {
	return &SummaryService{
		log:   p.Log.Named("analytics.summary"),
		store: p.Store,
		now:   time.Now,
	}
}

func (s *SummaryService) Summary(ctx context.Context) (*domain.Summary, error) {
	_ = ctx
	cfg, err := s.store.Get()
	if err != nil {
		return nil, err
	}
	if cfg.PropertyID != "" && cfg.ClientEmail != "" && cfg.PrivateKey != "" {
		// TODO: query the GA4 Data API with the stored credentials
		s.log.Debug("analytics credentials configured, still serving simulated data")
	}
	return s.simulate(), nil
}

var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

func (s *SummaryService) simulate() *domain.Summary {
	const days = 7
	today := s.now()

	byDay := make([]domain.DayClicks, 0, days)
	totalClicks := 0
	for i := 0; i < days; i++ {
		d := today.AddDate(0, 0, -(days - 1 - i))
		clicks := rand.Intn(20) + 5
		totalClicks += clicks
		byDay = append(byDay, domain.DayClicks{
			Date:           fmt.Sprintf("%02d %s", d.Day(), spanishMonths[d.Month()-1]),
			WhatsappClicks: clicks,
		})
	}

	totalSessions := 1200 + rand.Intn(500)

	return &domain.Summary{
		Summary: domain.Totals{
			SessionsLast7Days:       totalSessions,
			WhatsappClicksLast7Days: totalClicks,
			ConversionRateLast7Days: float64(totalClicks) / float64(totalSessions),
		},
		WhatsappByDay: byDay,
		TopConsultedProducts: []domain.ConsultedProduct{
			{ProductName: "Cámara IP Exterior WiFi", ProductCode: "CAM-001", ConsultsLast7Days: 42},
			{ProductName: "Kit Alarma Vecinal", ProductCode: "ALM-202", ConsultsLast7Days: 35},
			{ProductName: "Sensor de Movimiento", ProductCode: "SEN-305", ConsultsLast7Days: 28},
			{ProductName: "DVR 8 Canales", ProductCode: "DVR-008", ConsultsLast7Days: 19},
			{ProductName: "Video Portero", ProductCode: "VID-101", ConsultsLast7Days: 15},
		},
		TopViewedProducts: []domain.ViewedProduct{
			{ProductName: "Cámara IP Exterior WiFi", ProductCode: "CAM-001", ViewsLast7Days: 350},
			{ProductName: "Kit Alarma Vecinal", ProductCode: "ALM-202", ViewsLast7Days: 290},
			{ProductName: "Cable UTP Cat6", ProductCode: "CBL-100", ViewsLast7Days: 180},
			{ProductName: "Sensor de Movimiento", ProductCode: "SEN-305", ViewsLast7Days: 150},
			{ProductName: "Sirena 30W", ProductCode: "SIR-030", ViewsLast7Days: 120},
		},
	}
}

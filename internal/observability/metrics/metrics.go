package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	collectionWrites metric.Int64Counter
	mediaUploads     metric.Int64Counter
	contactMessages  metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "backoffice"
	}
	meter := provider.Meter(name)

	collectionWrites, err := meter.Int64Counter("backoffice_collection_writes_total")
	if err != nil {
		return nil, err
	}
	mediaUploads, err := meter.Int64Counter("backoffice_media_uploads_total")
	if err != nil {
		return nil, err
	}
	contactMessages, err := meter.Int64Counter("backoffice_contact_messages_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		collectionWrites: collectionWrites,
		mediaUploads:     mediaUploads,
		contactMessages:  contactMessages,
	}, nil
}

// RecordCollectionWrite increments the write count for a named collection.
func (m *Metrics) RecordCollectionWrite(ctx context.Context, collection, operation string) {
	if m == nil {
		return
	}
	m.collectionWrites.Add(ctx, 1, metric.WithAttributes(
		attribute.String("collection", strings.TrimSpace(collection)),
		attribute.String("operation", strings.TrimSpace(operation)),
	))
}

// RecordMediaUpload increments upload counts by declared content type.
func (m *Metrics) RecordMediaUpload(ctx context.Context, contentType string) {
	if m == nil {
		return
	}
	m.mediaUploads.Add(ctx, 1, metric.WithAttributes(
		attribute.String("content_type", strings.TrimSpace(contentType)),
	))
}

// RecordContactMessage increments the inbound contact message count.
func (m *Metrics) RecordContactMessage(ctx context.Context) {
	if m == nil {
		return
	}
	m.contactMessages.Add(ctx, 1)
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "", "grpc":
		return otlpmetricgrpc.New(context.Background(),
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	case "http", "http/protobuf":
		return otlpmetrichttp.New(context.Background(),
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unsupported metrics exporter protocol %q", protocol)
	}
}

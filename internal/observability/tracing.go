package observability

import (
	"context"
	"log"
	"time"

	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	ServiceName    = "app-agenda-equipamentos"
	ServiceVersion = "v1.0.0"
)

var tracerProvider *sdktrace.TracerProvider

// InitTracer registra o provider global de spans exportando via OTLP/gRPC.
// Com tracing desabilitado os spans do serviço continuam sendo criados, mas
// pelo provider no-op do otel.
func InitTracer(cfg config.TracingConfig) {
	if !cfg.Enabled {
		log.Println("[tracing] exportação desabilitada (TRACING_ENABLED=false)")
		return
	}

	ctx := context.Background()

	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	))
	if err != nil {
		log.Printf("[tracing] erro ao criar exporter OTLP para %s: %v", cfg.Endpoint, err)
		return
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(ServiceVersion),
		),
	)
	if err != nil {
		log.Printf("[tracing] erro ao criar resource: %v", err)
		return
	}

	// textos de chamado são pequenos; lotes menores que o padrão do SDK bastam
	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(256),
			sdktrace.WithBatchTimeout(5*time.Second),
			sdktrace.WithMaxQueueSize(1024),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(amostrador(cfg.SampleRatio)),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Printf("[tracing] exportando spans de %s para %s (amostragem %g)", ServiceName, cfg.Endpoint, cfg.SampleRatio)
}

// amostrador respeita a decisão do span pai (gateway) e amostra as raízes pela fração configurada
func amostrador(ratio float64) sdktrace.Sampler {
	if ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// ShutdownTracer envia os spans pendentes e encerra o provider
func ShutdownTracer() {
	if tracerProvider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Printf("[tracing] erro ao encerrar provider: %v", err)
	}
	tracerProvider = nil
}

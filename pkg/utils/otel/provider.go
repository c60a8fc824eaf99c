/*
Copyright 2026 The OSIRIS Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package otel

import (
	"context"
	"os"

	"github.com/go-logr/zapr"
	"go.opentelemetry.io/contrib/propagators/autoprop"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const CollectorEndpointEnvVar = "OTEL_COLLECTOR_ENDPOINT"

func getSpanProcessor(ctx context.Context, logger *zap.Logger) (sdktrace.SpanProcessor, error) {
	collectorEndpoint := os.Getenv(CollectorEndpointEnvVar)
	if collectorEndpoint == "" {
		logger.Info("skipping trace exporter registration")
		return nil, nil
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(collectorEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithBlock()),
	)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewBatchSpanProcessor(traceExporter), nil
}

// InitProvider registers the global tracer provider and propagators. Spans
// are exported over OTLP/gRPC only when OTEL_COLLECTOR_ENDPOINT is set.
// The returned func flushes pending spans.
func InitProvider(logger *zap.Logger, serviceName string) (func(), error) {
	otel.SetLogger(zapr.NewLogger(logger.Named("otel")))

	ctx := context.Background()
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, err
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
	)

	bsp, err := getSpanProcessor(ctx, logger)
	if err != nil {
		return nil, err
	}
	if bsp != nil {
		tracerProvider.RegisterSpanProcessor(bsp)
	}

	otel.SetTracerProvider(tracerProvider)
	// honours OTEL_PROPAGATORS, tracecontext and baggage otherwise
	otel.SetTextMapPropagator(autoprop.NewTextMapPropagator())

	return func() {
		err := tracerProvider.Shutdown(ctx)
		if err != nil {
			logger.Error("error shutting down trace provider", zap.Error(err))
		}
	}, nil
}

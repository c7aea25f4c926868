//go:build windows

package main

//
// helper functions for logging and tracing
//

import (
	"context"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Microsoft/go-junction/internal/config"
	"github.com/Microsoft/go-junction/internal/log"
	"github.com/Microsoft/go-junction/internal/otelutil"
)

var (
	tracerProvider *sdktrace.TracerProvider
	addHookOnce    sync.Once
)

func setupLogging(cfg *config.Config) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(cfg.Level())
	logrus.SetFormatter(cfg.Formatter())
	addHookOnce.Do(func() { logrus.AddHook(log.NewHook()) })

	if cfg.Trace {
		tracerProvider = otelutil.NewTracerProvider(&otelutil.LogrusExporter{Entry: log.L})
		otel.SetTracerProvider(tracerProvider)
	}
	return nil
}

func shutdownTracing(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}
	tp := tracerProvider
	tracerProvider = nil
	return tp.Shutdown(ctx)
}

package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Pa04rth/OpenCRE/internal/adapters/telemetry"
	"github.com/Pa04rth/OpenCRE/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/mock/gomock"
)

func TestLogProcessor_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Cond(func(x any) bool {
		msg, _ := x.(string)
		return strings.HasPrefix(msg, "loader.LoadAllDocuments took ")
	})).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogProcessor(mockLogger)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "loader.LoadAllDocuments")
	span.End()
}

func TestLogProcessor_Failure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Cond(func(x any) bool {
		msg, _ := x.(string)
		return strings.HasPrefix(msg, "GET /root_cres failed after ") && strings.HasSuffix(msg, ": connection refused")
	})).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogProcessor(mockLogger)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "GET /root_cres")
	span.RecordError(errors.New("connection refused"))
	span.SetStatus(codes.Error, "connection refused")
	span.End()
}

func TestLogProcessor_NilLogger(t *testing.T) {
	t.Parallel()

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogProcessor(nil)))
	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestSetup(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	p := telemetry.Setup(mockLogger)
	assert.NotNil(t, p.TracerProvider())
	require.NoError(t, p.Shutdown(context.Background()))
}

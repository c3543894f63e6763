package usecase

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/forPelevin/segview/internal/types"
)

type MockSegmentStore struct {
	mock.Mock
}

func (m *MockSegmentStore) Save(ctx context.Context, c types.Collection) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockSegmentStore) Load(ctx context.Context, name string) (types.Collection, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(types.Collection), args.Error(1)
}

func (m *MockSegmentStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type MockTypeWriter struct {
	mock.Mock
}

func (m *MockTypeWriter) WriteTypes(ctx context.Context, outDir string) (string, error) {
	args := m.Called(ctx, outDir)
	return args.String(0), args.Error(1)
}

type logLine struct {
	level string
	msg   string
}

type recordingLogger struct {
	lines []logLine
}

func (l *recordingLogger) Infof(format string, v ...any) {
	l.lines = append(l.lines, logLine{level: "info", msg: fmt.Sprintf(format, v...)})
}

func (l *recordingLogger) Warnf(format string, v ...any) {
	l.lines = append(l.lines, logLine{level: "warn", msg: fmt.Sprintf(format, v...)})
}

package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/quillhq/quill-console/internal/database/testutil"
	"github.com/quillhq/quill-console/internal/probe"
)

// stubProber lets tests script probe outcomes and run side effects mid-probe.
type stubProber struct {
	connectionFn func(ctx context.Context, sourceType string, config map[string]any) probe.Result
	storageFn    func(ctx context.Context, storageType string, config map[string]any) probe.Result
}

func (s *stubProber) Connection(ctx context.Context, sourceType string, config map[string]any) probe.Result {
	if s.connectionFn != nil {
		return s.connectionFn(ctx, sourceType, config)
	}
	return probe.Result{Success: true, Message: "ok"}
}

func (s *stubProber) Storage(ctx context.Context, storageType string, config map[string]any) probe.Result {
	if s.storageFn != nil {
		return s.storageFn(ctx, storageType, config)
	}
	return probe.Result{Success: true, Message: "ok"}
}

func openServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
}

package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/quillhq/quill-console/pkg/errors"
)

func newWidgetService(t *testing.T) *WidgetService {
	t.Helper()
	svc, err := NewWidgetService(openServiceDB(t))
	require.NoError(t, err)
	return svc
}

func lineChartInput(title string) CreateWidgetInput {
	return CreateWidgetInput{
		WidgetType: "line_chart",
		Config: map[string]any{
			"title":  title,
			"source": "readings",
			"metric": "value",
		},
	}
}

func TestWidgetCreateAppendsPosition(t *testing.T) {
	svc := newWidgetService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, lineChartInput("Temperature"))
	require.NoError(t, err)
	require.Equal(t, 0, first.Position)

	second, err := svc.Create(ctx, lineChartInput("Pressure"))
	require.NoError(t, err)
	require.Equal(t, 1, second.Position)

	widgets, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, widgets, 2)
	require.Equal(t, first.ID, widgets[0].ID)
}

func TestWidgetCreateValidatesConfig(t *testing.T) {
	svc := newWidgetService(t)

	_, err := svc.Create(context.Background(), CreateWidgetInput{
		WidgetType: "stats",
		Config:     map[string]any{"source": "bogus"},
	})
	require.Error(t, err)

	appErr := apperrors.FromError(err)
	require.Equal(t, "VALIDATION_FAILED", appErr.Code)
	require.Contains(t, appErr.Fields, "title")
	require.Contains(t, appErr.Fields, "source")

	_, err = svc.Create(context.Background(), CreateWidgetInput{WidgetType: "gauge"})
	require.ErrorIs(t, err, apperrors.ErrUnknownType)
}

func TestWidgetUpdatePositionAndConfig(t *testing.T) {
	svc := newWidgetService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, lineChartInput("Temperature"))
	require.NoError(t, err)

	pos := 5
	updated, err := svc.Update(ctx, record.ID, UpdateWidgetInput{
		Config:   map[string]any{"title": "Temp (C)", "source": "readings", "metric": "value", "timeRange": "day"},
		Position: &pos,
	})
	require.NoError(t, err)
	require.Equal(t, 5, updated.Position)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(updated.Config, &stored))
	require.Equal(t, "Temp (C)", stored["title"])
	require.Equal(t, "day", stored["timeRange"])
}

func TestWidgetDelete(t *testing.T) {
	svc := newWidgetService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, lineChartInput("Temperature"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, record.ID))
	_, err = svc.Get(ctx, record.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

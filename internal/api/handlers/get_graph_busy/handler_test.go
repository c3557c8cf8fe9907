package get_graph_busy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

type MockGraphCalendar struct {
	mock.Mock
}

func (m *MockGraphCalendar) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockGraphCalendar) BusyTimes(ctx context.Context, upn, start, end string) ([]string, []graph.Event, error) {
	args := m.Called(ctx, upn, start, end)
	times, _ := args.Get(0).([]string)
	events, _ := args.Get(1).([]graph.Event)
	return times, events, args.Error(2)
}

func TestHandler_EndDefaultsToStart(t *testing.T) {
	cal := new(MockGraphCalendar)
	cal.On("Configured").Return(true)
	cal.On("BusyTimes", mock.Anything, "ops@example.com", "2025-06-01", "2025-06-01").
		Return([]string{"06:00"}, []graph.Event{{Subject: "Charter", ShowAs: "busy"}}, nil)

	h := NewHandler(cal, logger.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/graph/availability?start=2025-06-01T08:00:00Z&upn=ops@example.com", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"blockedTimes":["06:00"]`)
	cal.AssertExpectations(t)
}

func TestHandler_MissingStart(t *testing.T) {
	cal := new(MockGraphCalendar)
	cal.On("Configured").Return(true)

	h := NewHandler(cal, logger.Nop())
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/graph/availability", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgMissingParams)
	cal.AssertNotCalled(t, "BusyTimes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/busmeme/busmeme/pkg/translink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlanner struct {
	journey *translink.Journey
	err     error

	calls    int
	lastMode string
}

func (p *stubPlanner) GetJourneysBetween(_ context.Context, startLat, startLng, destLat, destLng string, mode string, at int64, walkMax int) (*translink.Journey, error) {
	p.calls++
	p.lastMode = mode

	if p.err != nil {
		return nil, p.err
	}
	return p.journey, nil
}

func TestJourneyRoute(t *testing.T) {
	planner := &stubPlanner{
		journey: &translink.Journey{
			StartTime:  1464961260000,
			EndTime:    1464963120000,
			TotalZones: 3,
			Duration:   31,
			Legs:       []translink.JourneyLeg{},
		},
	}

	webApp := CreateServer(planner)

	req := httptest.NewRequest("GET", "/tl/-27.415458/153.050513/-27.465918/153.025939/after/1464961050/1200", nil)
	resp, err := webApp.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, planner.calls)
	assert.Equal(t, "after", planner.lastMode)

	var journey translink.Journey
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&journey))
	assert.Equal(t, int64(1464961260000), journey.StartTime)
	assert.Equal(t, 31, journey.Duration)
}

func TestJourneyRouteNoJourney(t *testing.T) {
	planner := &stubPlanner{err: translink.ErrNoJourney}

	webApp := CreateServer(planner)

	req := httptest.NewRequest("GET", "/tl/0.0/0.0/-27.465918/153.025939/after/1464961050/1200", nil)
	resp, err := webApp.Test(req, -1)
	require.NoError(t, err)

	// No geocode match renders as a 200 with a null body, not a failure.
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "null", string(body))
}

func TestJourneyRouteUpstreamFailure(t *testing.T) {
	planner := &stubPlanner{
		err: &translink.UpstreamError{Stage: "plan", StatusCode: http.StatusBadGateway, Err: errors.New("status 502")},
	}

	webApp := CreateServer(planner)

	req := httptest.NewRequest("GET", "/tl/-27.415458/153.050513/-27.465918/153.025939/after/1464961050/1200", nil)
	resp, err := webApp.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestJourneyRouteTimeout(t *testing.T) {
	planner := &stubPlanner{
		err: &translink.UpstreamError{Stage: "suggest", Err: context.DeadlineExceeded},
	}

	webApp := CreateServer(planner)

	req := httptest.NewRequest("GET", "/tl/-27.415458/153.050513/-27.465918/153.025939/after/1464961050/1200", nil)
	resp, err := webApp.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
}

func TestJourneyRouteBadParameters(t *testing.T) {
	planner := &stubPlanner{}

	webApp := CreateServer(planner)

	req := httptest.NewRequest("GET", "/tl/-27.415458/153.050513/-27.465918/153.025939/after/not-a-time/1200", nil)
	resp, err := webApp.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, planner.calls)
}

func TestVersionRoute(t *testing.T) {
	webApp := CreateServer(&stubPlanner{})

	req := httptest.NewRequest("GET", "/version", nil)
	resp, err := webApp.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

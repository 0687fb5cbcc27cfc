package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voyago/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTravelService returns canned results.
type stubTravelService struct {
	envelope *models.Envelope
	history  []models.ChatMessage
	err      error
	lastReq  models.TravelQuery
}

func (s *stubTravelService) Handle(ctx context.Context, q models.TravelQuery) (*models.Envelope, error) {
	s.lastReq = q
	return s.envelope, s.err
}

func (s *stubTravelService) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	return s.history, s.err
}

func (s *stubTravelService) ClearHistory(ctx context.Context, sessionID string) error {
	return s.err
}

func newTestRouter(svc *stubTravelService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTravelHandler(svc)
	r.POST("/api/travel/query", h.QueryHandler)
	r.GET("/api/travel/history/:sessionID", h.HistoryHandler)
	r.DELETE("/api/travel/history/:sessionID", h.ClearHistoryHandler)
	return r
}

func TestQueryHandler_Success(t *testing.T) {
	svc := &stubTravelService{envelope: &models.Envelope{
		RequestID: "req-1",
		Kind:      models.KindHotel,
		Routing:   models.RoutingDecision{Kind: models.KindHotel, Source: "keyword"},
		Hotels:    []models.HotelOption{{Name: "Rose View Hotel", City: "Sylhet", PricePerNight: 70}},
	}}
	router := newTestRouter(svc)

	body, _ := json.Marshal(gin.H{"query": "Find hotels in Sylhet", "session_id": "abc"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/travel/query", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", w.Header().Get("X-Session-ID"))

	var env models.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, models.KindHotel, env.Kind)
	require.Len(t, env.Hotels, 1)
	assert.Equal(t, "Sylhet", env.Hotels[0].City)
}

func TestQueryHandler_AssignsSessionWhenMissing(t *testing.T) {
	svc := &stubTravelService{envelope: &models.Envelope{Kind: models.KindText, Text: "hi"}}
	router := newTestRouter(svc)

	body, _ := json.Marshal(gin.H{"query": "hello"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/travel/query", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"))
	assert.NotEmpty(t, svc.lastReq.SessionID)
}

func TestQueryHandler_RejectsMalformedBody(t *testing.T) {
	svc := &stubTravelService{}
	router := newTestRouter(svc)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json at all"},
		{name: "missing query field", body: `{"session_id": "abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/travel/query", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestQueryHandler_ServiceError(t *testing.T) {
	svc := &stubTravelService{err: errors.New("redis gone")}
	router := newTestRouter(svc)

	body, _ := json.Marshal(gin.H{"query": "Find hotels in Sylhet"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/travel/query", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHistoryHandler(t *testing.T) {
	svc := &stubTravelService{history: []models.ChatMessage{
		{Role: "user", Content: "Find hotels in Sylhet"},
		{Role: "assistant", Content: "here you go", Kind: models.KindHotel},
	}}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/travel/history/abc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp.SessionID)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "assistant", resp.Messages[1].Role)
}

func TestClearHistoryHandler(t *testing.T) {
	svc := &stubTravelService{}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/travel/history/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

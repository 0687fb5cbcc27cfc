package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voyago/config"
	"voyago/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModel replays scripted completions in order, repeating the last one.
type stubModel struct {
	replies []string
	err     error
	calls   int
	prompts []string
}

func (s *stubModel) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", ModelCallError{Err: s.err}
	}
	idx := s.calls - 1
	if idx >= len(s.replies) {
		idx = len(s.replies) - 1
	}
	return s.replies[idx], nil
}

func newTestService(t *testing.T, model ModelClient) *DefaultTravelService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisHistoryStore(client, 30*time.Minute, 50)
	return NewDefaultTravelService(model, NewRouter(config.RouteKeywords), nil, store)
}

func TestHandle_ItineraryScenario(t *testing.T) {
	model := &stubModel{replies: []string{validItineraryJSON}}
	svc := newTestService(t, model)

	env, err := svc.Handle(context.Background(),
		models.TravelQuery{Text: "Plan a 3-day trip to Sylhet with a budget of 15000 BDT", SessionID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, models.KindItinerary, env.Kind)
	assert.Equal(t, models.KindItinerary, env.Routing.Kind)
	assert.Len(t, env.Days, 3)
	assert.Empty(t, env.Flights)
	assert.Empty(t, env.Hotels)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, 1, model.calls)

	// The prompt carries the extracted slots.
	assert.Contains(t, model.prompts[0], "Sylhet")
	assert.Contains(t, model.prompts[0], "exactly 3 days")
	assert.Contains(t, model.prompts[0], "15000.00 BDT")
}

func TestHandle_HotelScenarioFreshRequest(t *testing.T) {
	model := &stubModel{replies: []string{validHotelJSON}}
	svc := newTestService(t, model)

	env, err := svc.Handle(context.Background(),
		models.TravelQuery{Text: "Find hotels in Sylhet", SessionID: "s2"})

	require.NoError(t, err)
	assert.Equal(t, models.KindHotel, env.Kind)
	assert.Equal(t, env.Routing.Kind, env.Kind)
	require.NotEmpty(t, env.Hotels)
	assert.Equal(t, "Sylhet", env.Hotels[0].City)
}

func TestHandle_AmbiguousQueryYieldsClarification(t *testing.T) {
	model := &stubModel{replies: []string{"should never be called"}}
	svc := newTestService(t, model)

	env, err := svc.Handle(context.Background(),
		models.TravelQuery{Text: "hello there", SessionID: "s3"})

	require.NoError(t, err)
	assert.Equal(t, models.KindText, env.Kind)
	assert.NotEmpty(t, env.Text)
	assert.Equal(t, "fallback", env.Routing.Source)
	assert.Zero(t, model.calls, "no model call for ambiguous queries")
}

func TestHandle_MalformedOutputRetriesOnceThenFallsBack(t *testing.T) {
	model := &stubModel{replies: []string{
		"I think Biman flies there in the morning.",
		"Still conversational, still not JSON.",
	}}
	svc := newTestService(t, model)

	env, err := svc.Handle(context.Background(),
		models.TravelQuery{Text: "Find a flight to Sylhet", SessionID: "s4"})

	require.NoError(t, err, "exhausted retries must not surface as an error")
	assert.Equal(t, 2, model.calls, "exactly one retry")
	assert.Equal(t, models.KindText, env.Kind)
	assert.Equal(t, "Still conversational, still not JSON.", env.Text)
	assert.Contains(t, env.Notes, "flight")

	// The retry prompt is the strict variant.
	assert.Contains(t, model.prompts[1], "Respond ONLY")
}

func TestHandle_RetryRecoversShape(t *testing.T) {
	model := &stubModel{replies: []string{
		"Sure! Here are flights: Biman at 8am.",
		validFlightJSON,
	}}
	svc := newTestService(t, model)

	env, err := svc.Handle(context.Background(),
		models.TravelQuery{Text: "Find a flight to Sylhet", SessionID: "s5"})

	require.NoError(t, err)
	assert.Equal(t, 2, model.calls)
	assert.Equal(t, models.KindFlight, env.Kind)
	assert.Len(t, env.Flights, 2)
}

func TestHandle_ModelFailureYieldsTextEnvelope(t *testing.T) {
	model := &stubModel{err: errors.New("quota exceeded")}
	svc := newTestService(t, model)

	env, err := svc.Handle(context.Background(),
		models.TravelQuery{Text: "Find hotels in Dhaka", SessionID: "s6"})

	require.NoError(t, err, "model failures must not surface as an error")
	assert.Equal(t, models.KindText, env.Kind)
	assert.NotEmpty(t, env.Text)
	assert.Equal(t, "model unavailable", env.Notes)
	assert.Equal(t, 1, model.calls, "no retry for transport failures")
}

func TestHandle_IdenticalQueriesSameShape(t *testing.T) {
	model := &stubModel{replies: []string{validHotelJSON}}
	svc := newTestService(t, model)
	query := models.TravelQuery{Text: "Find hotels in Sylhet", SessionID: "s7"}

	first, err := svc.Handle(context.Background(), query)
	require.NoError(t, err)
	second, err := svc.Handle(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, first.Kind, second.Kind)
	assert.Equal(t, first.Routing, second.Routing)
	assert.Equal(t, len(first.Hotels), len(second.Hotels))
}

func TestHandle_RecordsTranscript(t *testing.T) {
	model := &stubModel{replies: []string{validHotelJSON}}
	svc := newTestService(t, model)
	ctx := context.Background()

	_, err := svc.Handle(ctx, models.TravelQuery{Text: "Find hotels in Sylhet", SessionID: "s8"})
	require.NoError(t, err)

	msgs, err := svc.History(ctx, "s8")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[0].Role)
	assert.Equal(t, "assistant", msgs[1].Role)
	assert.Equal(t, models.KindHotel, msgs[1].Kind)
	assert.True(t, strings.Contains(msgs[1].Content, "Grand Sylhet Hotel"))

	require.NoError(t, svc.ClearHistory(ctx, "s8"))
	msgs, err = svc.History(ctx, "s8")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestHandle_HintsOverrideExtractedSlots(t *testing.T) {
	model := &stubModel{replies: []string{validHotelJSON}}
	svc := newTestService(t, model)

	_, err := svc.Handle(context.Background(), models.TravelQuery{
		Text:  "Find hotels in Paris",
		Hints: models.SlotHints{Destination: "Sylhet"},
	})

	require.NoError(t, err)
	assert.Contains(t, model.prompts[0], "Destination: Sylhet")
}

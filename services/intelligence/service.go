// File: services/intelligence/service.go
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const clarificationText = "I can help with flights, hotels, or trip itineraries. " +
	"Tell me what you need and where, for example \"Find hotels in Sylhet\" or " +
	"\"Plan a 3-day trip to Bangkok\"."

const modelDownText = "I couldn't reach the travel model just now. Please try again in a moment."

// Handle runs the per-request pipeline: route, extract slots, render a prompt,
// call the model once, validate, retry once with a stricter prompt on a shape
// failure, and finally fall back to a plain-text envelope. It never returns an
// error for model-side problems; only broken input surfaces to the caller.
func (s *DefaultTravelService) Handle(ctx context.Context, query models.TravelQuery) (*models.Envelope, error) {
	logger := utils.GetLogger()

	env := &models.Envelope{
		RequestID: uuid.NewString(),
	}

	decision, routeErr := s.Router.Route(query.Text)
	env.Routing = decision

	if routeErr != nil {
		var ambiguous RoutingAmbiguousError
		if errors.As(routeErr, &ambiguous) {
			logger.Debug("No specialist matched, asking for clarification",
				zap.String("query", query.Text))
			env.Kind = models.KindText
			env.Text = clarificationText
			s.record(ctx, query, env)
			return env, nil
		}
		return nil, routeErr
	}

	slots := ExtractSlots(query.Text).MergeHints(query.Hints)

	weatherLine := ""
	if decision.Kind == models.KindItinerary && s.Weather != nil {
		line, err := s.Weather.Current(ctx, slots.Destination)
		if err != nil {
			logger.Warn("Weather lookup failed, continuing without it", zap.Error(err))
		} else {
			weatherLine = line
		}
	}

	prompt := RenderPrompt(decision.Kind, query.Text, slots, weatherLine)
	raw, err := s.Client.Generate(ctx, prompt)
	if err != nil {
		logger.Error("Model call failed", zap.Error(err), zap.String("kind", string(decision.Kind)))
		env.Kind = models.KindText
		env.Text = modelDownText
		env.Notes = "model unavailable"
		s.record(ctx, query, env)
		return env, nil
	}

	payload, err := ParsePayload(raw, decision.Kind)
	if err != nil {
		var vErr ValidationError
		if !errors.As(err, &vErr) {
			return nil, err
		}
		logger.Warn("Model output failed shape validation, retrying once",
			zap.String("kind", string(decision.Kind)), zap.String("detail", vErr.Detail))

		retryRaw, retryErr := s.Client.Generate(ctx, RenderStrictPrompt(decision.Kind, query.Text, slots))
		if retryErr == nil {
			raw = retryRaw
			payload, err = ParsePayload(raw, decision.Kind)
		} else {
			err = retryErr
		}

		if err != nil {
			// Out of retries: hand the raw content back as plain text so the
			// UI still has something to render.
			logger.Warn("Schema retry exhausted, returning raw text",
				zap.String("kind", string(decision.Kind)), zap.Error(err))
			env.Kind = models.KindText
			env.Text = raw
			env.Notes = fmt.Sprintf("could not shape %s response", decision.Kind)
			s.record(ctx, query, env)
			return env, nil
		}
	}

	env.Kind = decision.Kind
	switch decision.Kind {
	case models.KindFlight:
		env.Flights = payload.Flights
	case models.KindHotel:
		env.Hotels = payload.Hotels
	case models.KindItinerary:
		env.Days = payload.Days
	}

	s.record(ctx, query, env)
	return env, nil
}

func (s *DefaultTravelService) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	if s.Store == nil {
		return nil, nil
	}
	return s.Store.Recent(ctx, sessionID)
}

func (s *DefaultTravelService) ClearHistory(ctx context.Context, sessionID string) error {
	if s.Store == nil {
		return nil
	}
	return s.Store.Clear(ctx, sessionID)
}

// record appends the exchange to the session transcript. History is best
// effort; a store failure is logged, never propagated.
func (s *DefaultTravelService) record(ctx context.Context, query models.TravelQuery, env *models.Envelope) {
	if s.Store == nil || query.SessionID == "" {
		return
	}

	now := time.Now().UTC()
	assistant := models.ChatMessage{Role: "assistant", Kind: env.Kind, At: now}
	if env.Kind == models.KindText {
		assistant.Content = env.Text
	} else {
		b, err := json.Marshal(env)
		if err != nil {
			utils.GetLogger().Warn("Failed to marshal envelope for history", zap.Error(err))
			return
		}
		assistant.Content = string(b)
	}

	err := s.Store.Append(ctx, query.SessionID,
		models.ChatMessage{Role: "user", Content: query.Text, At: now},
		assistant,
	)
	if err != nil {
		utils.GetLogger().Warn("Failed to append chat history",
			zap.String("sessionID", query.SessionID), zap.Error(err))
	}
}

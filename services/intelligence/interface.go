// File: services/intelligence/interface.go
package ai

import (
	"context"

	"voyago/models"
)

// TravelService routes a travel query to one specialist, shapes the model's
// answer, and always hands back something the UI can render.
type TravelService interface {
	Handle(ctx context.Context, query models.TravelQuery) (*models.Envelope, error)
	History(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	ClearHistory(ctx context.Context, sessionID string) error
}

// DefaultTravelService is the production implementation.
type DefaultTravelService struct {
	Client  ModelClient
	Router  *Router
	Weather *WeatherClient // optional
	Store   HistoryStore   // optional
}

func NewDefaultTravelService(client ModelClient, router *Router, weather *WeatherClient, history HistoryStore) *DefaultTravelService {
	return &DefaultTravelService{
		Client:  client,
		Router:  router,
		Weather: weather,
		Store:   history,
	}
}

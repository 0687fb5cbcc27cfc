// File: services/intelligence/router.go
package ai

import (
	"regexp"
	"strings"

	"voyago/models"
)

// routeOrder fixes the precedence between specialists. Itinerary keywords are
// checked first so "plan a trip to Paris and find hotels" goes to the planner;
// the planner hands nothing off, each request gets exactly one specialist.
var routeOrder = []models.SpecialistKind{
	models.KindItinerary,
	models.KindHotel,
	models.KindFlight,
}

// Router selects a specialist for a query using a keyword lookup table.
type Router struct {
	keywords map[models.SpecialistKind][]string
}

// NewRouter builds a router from a keyword table keyed by specialist kind
// ("flight", "hotel", "itinerary"). Unknown keys are ignored.
func NewRouter(table map[string][]string) *Router {
	kw := make(map[models.SpecialistKind][]string, len(table))
	for key, words := range table {
		kind := models.SpecialistKind(key)
		if !kind.Valid() || kind == models.KindText {
			continue
		}
		lowered := make([]string, 0, len(words))
		for _, w := range words {
			lowered = append(lowered, strings.ToLower(w))
		}
		kw[kind] = lowered
	}
	return &Router{keywords: kw}
}

var tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

// Route decides which specialist handles the query text. When no keyword
// matches it returns a RoutingAmbiguousError; the orchestrator turns that into
// a plain-text clarification, never a hard failure.
func (r *Router) Route(text string) (models.RoutingDecision, error) {
	tokens := tokenSplit.Split(strings.ToLower(text), -1)
	present := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if t != "" {
			present[t] = true
		}
	}

	for _, kind := range routeOrder {
		for _, word := range r.keywords[kind] {
			if present[word] {
				return models.RoutingDecision{
					Kind:           kind,
					MatchedKeyword: word,
					Source:         "keyword",
				}, nil
			}
		}
	}

	return models.RoutingDecision{Kind: models.KindText, Source: "fallback"},
		RoutingAmbiguousError{Query: text}
}

// File: services/intelligence/prompts.go
package ai

import (
	"fmt"
	"strings"

	"voyago/models"
)

const flightShape = `[
  {
    "airline": "string",
    "origin": "string",
    "destination": "string",
    "date": "YYYY-MM-DD",
    "departure_time": "HH:MM",
    "arrival_time": "HH:MM",
    "price": 0.0,
    "currency": "USD",
    "direct": true,
    "recommendation_reason": "string"
  }
]`

const hotelShape = `[
  {
    "name": "string",
    "city": "string",
    "location": "string",
    "price_per_night": 0.0,
    "currency": "USD",
    "rating": 0.0,
    "amenities": ["string"],
    "recommendation_reason": "string"
  }
]`

const itineraryShape = `[
  {
    "day": 1,
    "activities": ["string"],
    "estimated_cost": 0.0
  }
]`

func shapeFor(kind models.SpecialistKind) string {
	switch kind {
	case models.KindFlight:
		return flightShape
	case models.KindHotel:
		return hotelShape
	case models.KindItinerary:
		return itineraryShape
	}
	return ""
}

func roleFor(kind models.SpecialistKind) string {
	switch kind {
	case models.KindFlight:
		return "You are a flight specialist. Suggest 2-4 plausible flight options for the user's destination. Check the destination carefully."
	case models.KindHotel:
		return "You are a hotel specialist. Suggest 2-4 hotels in the exact city the user asked about. Do not guess the city."
	case models.KindItinerary:
		return "You are a travel planner. Produce a day-by-day plan with concrete activities and rough daily costs."
	}
	return ""
}

// RenderPrompt builds the specialist prompt for a query. Known slot values are
// stated as facts; missing ones come with an instruction to assume sensible
// defaults rather than refuse.
func RenderPrompt(kind models.SpecialistKind, queryText string, slots Slots, weatherLine string) string {
	var b strings.Builder

	b.WriteString(roleFor(kind))
	b.WriteString("\n\nUser request: ")
	b.WriteString(queryText)
	b.WriteString("\n")

	writeSlotLines(&b, kind, slots)

	if weatherLine != "" {
		fmt.Fprintf(&b, "Current weather at the destination: %s\n", weatherLine)
	}

	b.WriteString("\nRespond with a JSON array matching exactly this shape:\n")
	b.WriteString(shapeFor(kind))
	b.WriteString("\nFor any detail the request does not pin down, assume a reasonable default instead of asking.\n")

	return b.String()
}

// RenderStrictPrompt is the one retry after a shape failure: same facts, but
// the output contract is restated as the only acceptable answer.
func RenderStrictPrompt(kind models.SpecialistKind, queryText string, slots Slots) string {
	var b strings.Builder

	b.WriteString(roleFor(kind))
	b.WriteString("\n\nUser request: ")
	b.WriteString(queryText)
	b.WriteString("\n")

	writeSlotLines(&b, kind, slots)

	b.WriteString("\nYour previous answer did not match the required shape.\n")
	b.WriteString("Respond ONLY with a raw JSON array in exactly this shape, no prose, no markdown fences:\n")
	b.WriteString(shapeFor(kind))
	b.WriteString("\n")

	return b.String()
}

func writeSlotLines(b *strings.Builder, kind models.SpecialistKind, slots Slots) {
	if slots.Destination != "" {
		fmt.Fprintf(b, "Destination: %s\n", slots.Destination)
	}
	if slots.Origin != "" {
		fmt.Fprintf(b, "Origin: %s\n", slots.Origin)
	}
	if slots.StartDate != "" {
		fmt.Fprintf(b, "Start date: %s\n", slots.StartDate)
	}
	if slots.EndDate != "" {
		fmt.Fprintf(b, "End date: %s\n", slots.EndDate)
	}
	if slots.DurationDays > 0 && kind == models.KindItinerary {
		fmt.Fprintf(b, "Trip length: exactly %d days; produce exactly %d entries, day 1 through day %d.\n",
			slots.DurationDays, slots.DurationDays, slots.DurationDays)
	}
	if slots.Budget > 0 {
		currency := slots.Currency
		if currency == "" {
			currency = "USD"
		}
		fmt.Fprintf(b, "Budget: %.2f %s; keep prices within it and quote them in %s.\n",
			slots.Budget, currency, currency)
	}
}

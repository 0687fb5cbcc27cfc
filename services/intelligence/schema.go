// File: services/intelligence/schema.go
package ai

import (
	"encoding/json"
	"strings"

	"voyago/models"

	"github.com/xeipuuv/gojsonschema"
)

// Shape contracts for each specialist's output. Only presence and type are
// checked; the data itself is illustrative and gets no business validation.
const flightSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["airline", "destination", "departure_time", "arrival_time", "price"],
    "properties": {
      "airline": {"type": "string"},
      "origin": {"type": "string"},
      "destination": {"type": "string"},
      "date": {"type": "string"},
      "departure_time": {"type": "string"},
      "arrival_time": {"type": "string"},
      "price": {"type": "number"},
      "currency": {"type": "string"},
      "direct": {"type": "boolean"},
      "recommendation_reason": {"type": "string"}
    }
  }
}`

const hotelSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["name", "city", "price_per_night", "amenities"],
    "properties": {
      "name": {"type": "string"},
      "city": {"type": "string"},
      "location": {"type": "string"},
      "price_per_night": {"type": "number"},
      "currency": {"type": "string"},
      "rating": {"type": "number"},
      "amenities": {"type": "array", "items": {"type": "string"}},
      "recommendation_reason": {"type": "string"}
    }
  }
}`

const itinerarySchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["day", "activities"],
    "properties": {
      "day": {"type": "integer"},
      "activities": {"type": "array", "items": {"type": "string"}, "minItems": 1},
      "estimated_cost": {"type": "number"}
    }
  }
}`

var schemaByKind = map[models.SpecialistKind]*gojsonschema.Schema{}

func init() {
	for kind, raw := range map[models.SpecialistKind]string{
		models.KindFlight:    flightSchema,
		models.KindHotel:     hotelSchema,
		models.KindItinerary: itinerarySchema,
	} {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
		if err != nil {
			panic("invalid built-in schema for " + string(kind) + ": " + err.Error())
		}
		schemaByKind[kind] = schema
	}
}

// Payload holds the parsed specialist output; exactly one field is set.
type Payload struct {
	Flights []models.FlightOption
	Hotels  []models.HotelOption
	Days    []models.ItineraryDay
}

// ParsePayload validates raw model output against the schema for kind and
// unmarshals it into the matching entity list. Models like wrapping JSON in
// markdown fences, so those are stripped first.
func ParsePayload(raw string, kind models.SpecialistKind) (*Payload, error) {
	doc := stripFences(raw)

	schema, ok := schemaByKind[kind]
	if !ok {
		return nil, ValidationError{Kind: string(kind), Detail: "no schema for kind"}
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return nil, ValidationError{Kind: string(kind), Detail: "not valid JSON: " + err.Error()}
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, ValidationError{Kind: string(kind), Detail: strings.Join(details, "; ")}
	}

	var payload Payload
	switch kind {
	case models.KindFlight:
		err = json.Unmarshal([]byte(doc), &payload.Flights)
	case models.KindHotel:
		err = json.Unmarshal([]byte(doc), &payload.Hotels)
	case models.KindItinerary:
		err = json.Unmarshal([]byte(doc), &payload.Days)
	}
	if err != nil {
		return nil, ValidationError{Kind: string(kind), Detail: err.Error()}
	}
	return &payload, nil
}

// stripFences removes a surrounding markdown code fence and any prose before
// the first bracket of the JSON array.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

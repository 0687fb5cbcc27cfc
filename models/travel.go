package models

// SpecialistKind identifies which of the fixed specialists produced (or should
// produce) a response. There are exactly three specialists plus a plain-text
// fallback; the set is closed and not extensible at runtime.
type SpecialistKind string

const (
	KindFlight    SpecialistKind = "flight"
	KindHotel     SpecialistKind = "hotel"
	KindItinerary SpecialistKind = "itinerary"
	KindText      SpecialistKind = "text"
)

// Valid reports whether k is one of the known specialist kinds.
func (k SpecialistKind) Valid() bool {
	switch k {
	case KindFlight, KindHotel, KindItinerary, KindText:
		return true
	}
	return false
}

// SlotHints carries optional structured hints alongside the free-text query.
type SlotHints struct {
	Destination string  `json:"destination,omitempty"`
	Origin      string  `json:"origin,omitempty"`
	StartDate   string  `json:"start_date,omitempty"`
	EndDate     string  `json:"end_date,omitempty"`
	Budget      float64 `json:"budget,omitempty"`
	Currency    string  `json:"currency,omitempty"`
}

// TravelQuery is the payload coming from the frontend into /api/travel/query.
type TravelQuery struct {
	Text      string    `json:"query" binding:"required"`
	SessionID string    `json:"session_id,omitempty"`
	Hints     SlotHints `json:"hints,omitempty"`
}

// RoutingDecision records which specialist was selected for a query and why.
type RoutingDecision struct {
	Kind           SpecialistKind `json:"kind"`
	MatchedKeyword string         `json:"matched_keyword,omitempty"`
	// Source is "keyword" when the lookup table decided, "fallback" when no
	// specialist matched and the text kind was chosen.
	Source string `json:"source"`
}

// FlightOption is a single model-generated flight suggestion. The data is
// illustrative, not checked against any real inventory.
type FlightOption struct {
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin,omitempty"`
	Destination   string  `json:"destination"`
	Date          string  `json:"date,omitempty"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency,omitempty"`
	Direct        bool    `json:"direct"`
	Reason        string  `json:"recommendation_reason,omitempty"`
}

// HotelOption is a single model-generated hotel suggestion.
type HotelOption struct {
	Name          string   `json:"name"`
	City          string   `json:"city"`
	Location      string   `json:"location,omitempty"`
	PricePerNight float64  `json:"price_per_night"`
	Currency      string   `json:"currency,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Amenities     []string `json:"amenities"`
	Reason        string   `json:"recommendation_reason,omitempty"`
}

// ItineraryDay is one day of a generated travel plan.
type ItineraryDay struct {
	Day           int      `json:"day"`
	Activities    []string `json:"activities"`
	EstimatedCost float64  `json:"estimated_cost,omitempty"`
}

// Envelope is the uniform response returned to the UI. Exactly one payload
// field is populated, and it always corresponds to Routing.Kind.
type Envelope struct {
	RequestID string          `json:"request_id"`
	Kind      SpecialistKind  `json:"kind"`
	Routing   RoutingDecision `json:"routing"`
	Flights   []FlightOption  `json:"flights,omitempty"`
	Hotels    []HotelOption   `json:"hotels,omitempty"`
	Days      []ItineraryDay  `json:"days,omitempty"`
	Text      string          `json:"text,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

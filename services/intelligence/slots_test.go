package ai

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
)

func TestExtractSlots(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Slots
	}{
		{
			name:  "itinerary query with duration and budget",
			query: "Plan a 3-day trip to Sylhet with a budget of 15000 BDT",
			want: Slots{
				Destination:  "Sylhet",
				DurationDays: 3,
				Budget:       15000,
				Currency:     "BDT",
			},
		},
		{
			name:  "hotel query with city only",
			query: "Find hotels in Sylhet",
			want:  Slots{Destination: "Sylhet"},
		},
		{
			name:  "dollar budget",
			query: "Find hotels in Paris under $200",
			want:  Slots{Destination: "Paris", Budget: 200, Currency: "USD"},
		},
		{
			name:  "origin and destination",
			query: "Find a flight from Dhaka to Bangkok",
			want:  Slots{Origin: "Dhaka", Destination: "Bangkok"},
		},
		{
			name:  "two word city",
			query: "Plan a week in New York",
			want:  Slots{Destination: "New York"},
		},
		{
			name:  "iso dates",
			query: "Hotels in Rome from 2026-09-01 to 2026-09-05",
			want:  Slots{Destination: "Rome", StartDate: "2026-09-01", EndDate: "2026-09-05"},
		},
		{
			name:  "days spelled out",
			query: "a 5 days itinerary for Tokyo",
			want:  Slots{Destination: "Tokyo", DurationDays: 5},
		},
		{
			name:  "nothing extractable",
			query: "help me out here",
			want:  Slots{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSlots(tt.query))
		})
	}
}

func TestSlots_MergeHints(t *testing.T) {
	extracted := Slots{Destination: "Paris", Budget: 100, Currency: "USD"}

	merged := extracted.MergeHints(models.SlotHints{
		Destination: "Lyon",
		Budget:      250,
		Currency:    "eur",
		StartDate:   "2026-10-01",
	})

	assert.Equal(t, "Lyon", merged.Destination)
	assert.Equal(t, 250.0, merged.Budget)
	assert.Equal(t, "EUR", merged.Currency)
	assert.Equal(t, "2026-10-01", merged.StartDate)

	// empty hints leave extracted values alone
	same := extracted.MergeHints(models.SlotHints{})
	assert.Equal(t, extracted, same)
}

// File: services/intelligence/slots.go
package ai

import (
	"regexp"
	"strconv"
	"strings"

	"voyago/models"
)

// Slots are the parameters extracted from a query and used to fill a
// specialist prompt. Extraction is best effort; empty slots are passed through
// and the prompt tells the model to assume reasonable defaults.
type Slots struct {
	Destination  string
	Origin       string
	StartDate    string
	EndDate      string
	DurationDays int
	Budget       float64
	Currency     string
}

var (
	durationRe = regexp.MustCompile(`(?i)\b(\d{1,2})[\s-]?day(?:s)?\b`)
	// "budget of 15000 BDT", "budget: 200 USD", "15000 BDT budget"
	budgetRe = regexp.MustCompile(`(?i)\bbudget(?:\s+of)?[:\s]+([\d][\d,]*(?:\.\d+)?)\s*([A-Za-z]{3})?`)
	// "under $200", "$150", "below 300 USD"
	amountRe = regexp.MustCompile(`(?i)\b(?:under|below|within|max)?\s*\$\s*([\d][\d,]*(?:\.\d+)?)`)
	// "to Sylhet", "in Paris", "for New York": capitalized place name after a preposition.
	destRe = regexp.MustCompile(`\b(?:to|in|at|for)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	// "from Dhaka to ..."
	originRe = regexp.MustCompile(`\bfrom\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	dateRe   = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
)

// noise words that destRe can capture when they directly follow a preposition.
var destStopwords = map[string]bool{
	"find": true, "plan": true, "book": true, "the": true,
	"my": true, "a": true, "me": true,
}

// ExtractSlots pulls destination, origin, dates, duration, and budget out of
// free-form query text.
func ExtractSlots(text string) Slots {
	var s Slots

	if m := durationRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			s.DurationDays = n
		}
	}

	if m := budgetRe.FindStringSubmatch(text); m != nil {
		s.Budget = parseAmount(m[1])
		if m[2] != "" {
			s.Currency = strings.ToUpper(m[2])
		}
	} else if m := amountRe.FindStringSubmatch(text); m != nil {
		s.Budget = parseAmount(m[1])
		s.Currency = "USD"
	}

	if m := originRe.FindStringSubmatch(text); m != nil {
		s.Origin = m[1]
	}
	for _, m := range destRe.FindAllStringSubmatch(text, -1) {
		candidate := m[1]
		if destStopwords[strings.ToLower(candidate)] {
			continue
		}
		if candidate == s.Origin {
			continue
		}
		s.Destination = candidate
		break
	}

	dates := dateRe.FindAllString(text, -1)
	if len(dates) > 0 {
		s.StartDate = dates[0]
	}
	if len(dates) > 1 {
		s.EndDate = dates[1]
	}

	return s
}

// MergeHints overlays explicit structured hints on top of extracted slots.
// Hints win: the caller knew what it meant.
func (s Slots) MergeHints(h models.SlotHints) Slots {
	if h.Destination != "" {
		s.Destination = h.Destination
	}
	if h.Origin != "" {
		s.Origin = h.Origin
	}
	if h.StartDate != "" {
		s.StartDate = h.StartDate
	}
	if h.EndDate != "" {
		s.EndDate = h.EndDate
	}
	if h.Budget > 0 {
		s.Budget = h.Budget
	}
	if h.Currency != "" {
		s.Currency = strings.ToUpper(h.Currency)
	}
	return s
}

func parseAmount(raw string) float64 {
	cleaned := strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

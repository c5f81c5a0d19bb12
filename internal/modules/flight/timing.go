package flight

import (
	"fmt"
	"strings"
)

const (
	defaultArrivalWindow   = "Arrive afternoon (12:00–18:00) for an easy check-in + evening activity"
	defaultDepartureWindow = "Depart late morning/afternoon (10:00–16:00) to avoid very early rush"

	relaxedArrivalWindow = "Arrive afternoon/evening (14:00–20:00) for a relaxed first day"
	fastArrivalWindow    = "Arrive morning (07:00–11:00) to maximize Day 1"
	fastDepartureWindow  = "Depart evening (17:00–22:00) to maximize final day"
	lateDepartureWindow  = "Depart afternoon/evening (13:00–21:00) to avoid early departures"
)

const fallbackTimingReasoning = "General travel comfort + check-in/check-out practicality."

// AdviseTiming derives arrival/departure windows from the itinerary pace and
// constraints. Rules run in order; a later rule may overwrite a window set by an
// earlier one (an avoid-early constraint replaces the fast-pace departure).
func AdviseTiming(pace, constraints, dayStartTime string) TimingAdvice {
	arrival := defaultArrivalWindow
	departure := defaultDepartureWindow
	var reasons []string

	p := strings.ToLower(pace)
	c := strings.ToLower(constraints)

	if strings.Contains(p, "slow") || strings.Contains(p, "relax") {
		arrival = relaxedArrivalWindow
		reasons = append(reasons, "Relaxed pace → later arrival is fine.")
	} else if strings.Contains(p, "fast") || strings.Contains(p, "packed") {
		arrival = fastArrivalWindow
		departure = fastDepartureWindow
		reasons = append(reasons, "Fast/packed pace → maximize usable daylight hours.")
	}

	if strings.Contains(c, "avoid") && strings.Contains(c, "early") {
		departure = lateDepartureWindow
		reasons = append(reasons, "Constraint mentions avoiding early times.")
	}

	if strings.Contains(c, "avoid long commutes") {
		reasons = append(reasons, "Avoid long commutes → prefer arrival that avoids peak transit if possible.")
	}

	reasons = append(reasons, fmt.Sprintf("Day start time is %s → flights that don’t force a 04:00 wake-up are preferable.", dayStartTime))

	reasoning := strings.TrimSpace(strings.Join(reasons, " "))
	if reasoning == "" {
		reasoning = fallbackTimingReasoning
	}

	return TimingAdvice{
		RecommendedArrivalWindow:   arrival,
		RecommendedDepartureWindow: departure,
		Reasoning:                  reasoning,
	}
}

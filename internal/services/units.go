package services

import (
	"fmt"
	"strconv"
	"strings"

	"vitalis/internal/domain"
)

// Storage is always metric: kilograms and meters. Conversion happens only at
// the display and input boundaries.

const (
	lbPerKg      = 2.20462
	metersPerMi  = 1609.344
	metersPerKm  = 1000.0
	secondsPerHr = 3600
)

func KgToLb(kg float64) float64 { return kg * lbPerKg }
func LbToKg(lb float64) float64 { return lb / lbPerKg }

func MetersToMiles(m float64) float64 { return m / metersPerMi }
func MilesToMeters(mi float64) float64 { return mi * metersPerMi }

func MetersToKm(m float64) float64 { return m / metersPerKm }
func KmToMeters(km float64) float64 { return km * metersPerKm }

// FormatWeight renders a stored kilogram value in the user's unit system.
func FormatWeight(kg float64, units domain.UnitSystem) string {
	if units == domain.UnitsImperial {
		return fmt.Sprintf("%s lb", trimFloat(KgToLb(kg), 1))
	}
	return fmt.Sprintf("%s kg", trimFloat(kg, 1))
}

// FormatDistance renders a stored meter value in the user's unit system.
func FormatDistance(meters float64, units domain.UnitSystem) string {
	if units == domain.UnitsImperial {
		return fmt.Sprintf("%s mi", trimFloat(MetersToMiles(meters), 2))
	}
	return fmt.Sprintf("%s km", trimFloat(MetersToKm(meters), 2))
}

// FormatDuration renders seconds as M:SS, or H:MM:SS past the hour.
func FormatDuration(seconds int) string {
	h := seconds / secondsPerHr
	m := (seconds % secondsPerHr) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ParseWeightInput converts a user-entered weight to kilograms.
func ParseWeightInput(raw string, units domain.UnitSystem) (float64, error) {
	v, err := parsePositiveFloat(raw, "weight")
	if err != nil {
		return 0, err
	}
	if units == domain.UnitsImperial {
		v = LbToKg(v)
	}
	if err := ValidateWeight(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseDistanceInput converts a user-entered distance (km or miles) to meters.
func ParseDistanceInput(raw string, units domain.UnitSystem) (float64, error) {
	v, err := parsePositiveFloat(raw, "distance")
	if err != nil {
		return 0, err
	}
	if units == domain.UnitsImperial {
		v = MilesToMeters(v)
	} else {
		v = KmToMeters(v)
	}
	if err := ValidateDistance(v); err != nil {
		return 0, err
	}
	return v, nil
}

func parsePositiveFloat(raw, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: field, Msg: fmt.Sprintf("%q is not a number", raw)}
	}
	return v, nil
}

func trimFloat(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

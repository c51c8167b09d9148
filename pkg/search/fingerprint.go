package search

import (
	"math"

	"github.com/aretw0/furrow/pkg/domain"
)

// quantum is the resolution at which two states are considered equal.
const quantum = 1e-6

// fingerprint identifies a state for duplicate detection.
// Environment fields are constant within a search and are left out.
type fingerprint struct {
	moisture, n, p, k     int64
	water, fert, retained int64
	events                int
}

func fingerprintOf(s domain.FarmState) fingerprint {
	q := func(x float64) int64 { return int64(math.Round(x / quantum)) }
	return fingerprint{
		moisture: q(s.SoilMoisture),
		n:        q(s.N),
		p:        q(s.P),
		k:        q(s.K),
		water:    q(s.WaterUsed),
		fert:     q(s.FertilizerUsed),
		retained: q(s.WaterRetained),
		events:   s.IrrigationEvents,
	}
}

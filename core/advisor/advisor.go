// Package advisor converts load into current and recommends circuit
// protection and cable sizes.
package advisor

import (
	"math"
)

// NominalVoltage is the single-phase supply voltage all conversions assume.
const NominalVoltage = 230.0

// OverloadThreshold is the current above which a circuit should be split.
const OverloadThreshold = 30.0

// OverloadMessage is shown for any circuit above OverloadThreshold.
const OverloadMessage = "Load exceeds 30A, consider splitting into multiple circuits."

// Bucket is one row of the protection table. A current belongs to the first
// bucket whose UpperAmperes it does not exceed.
type Bucket struct {
	UpperAmperes  float64 `json:"upper_amperes"`
	BreakerRating int     `json:"breaker_rating"`
	Breaker       string  `json:"breaker"`
	CableMM2      string  `json:"cable_mm2"`
	Cable         string  `json:"cable"`
}

var buckets = []Bucket{
	{UpperAmperes: 10, BreakerRating: 10, Breaker: "10A MCB (Miniature Circuit Breaker)", CableMM2: "1.5", Cable: "1.5 mm² Cable"},
	{UpperAmperes: 20, BreakerRating: 20, Breaker: "20A MCB", CableMM2: "2.5", Cable: "2.5 mm² Cable"},
	{UpperAmperes: 30, BreakerRating: 30, Breaker: "30A ELCB (Earth Leakage Circuit Breaker)", CableMM2: "4", Cable: "4 mm² Cable"},
	{UpperAmperes: math.Inf(1), BreakerRating: 40, Breaker: "40A RCCB (Residual Current Circuit Breaker)", CableMM2: "6", Cable: "6 mm² Cable"},
}

// Buckets returns a copy of the protection table in ascending order
func Buckets() []Bucket {
	out := make([]Bucket, len(buckets))
	copy(out, buckets)
	return out
}

// Recommendation is the advice for one current value
type Recommendation struct {
	Amperes  float64 `json:"amperes"`
	Bucket   Bucket  `json:"bucket"`
	Overload bool    `json:"overload"`
}

// Breaker returns the recommended breaker label
func (r Recommendation) Breaker() string {
	return r.Bucket.Breaker
}

// Cable returns the recommended cable label
func (r Recommendation) Cable() string {
	return r.Bucket.Cable
}

// KwToAmperes converts a load in kW to current at NominalVoltage
func KwToAmperes(kw float64) float64 {
	return kw * 1000 / NominalVoltage
}

// Recommend evaluates the protection table once for amperes, so breaker and
// cable always come from the same row.
func Recommend(amperes float64) Recommendation {
	chosen := buckets[len(buckets)-1]
	for _, b := range buckets {
		if amperes <= b.UpperAmperes {
			chosen = b
			break
		}
	}
	return Recommendation{
		Amperes:  amperes,
		Bucket:   chosen,
		Overload: IsOverload(amperes),
	}
}

// RecommendBreaker returns the breaker label for amperes
func RecommendBreaker(amperes float64) string {
	return Recommend(amperes).Breaker()
}

// RecommendCable returns the cable label for amperes
func RecommendCable(amperes float64) string {
	return Recommend(amperes).Cable()
}

// IsOverload reports whether amperes is strictly above OverloadThreshold.
// Exactly 30A sits in the ELCB bucket without a warning.
func IsOverload(amperes float64) bool {
	return amperes > OverloadThreshold
}

// ForLoad converts kw and recommends in one step
func ForLoad(kw float64) Recommendation {
	return Recommend(KwToAmperes(kw))
}

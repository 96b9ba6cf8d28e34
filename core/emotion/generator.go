package emotion

import (
	"math"
	"time"
)

// Generation constants. The transform order in Generate is fixed: base draw,
// class transform, seasonal effect, event effects, then a single final clamp.
const (
	baseStdDev        = 0.5 // noise around the pattern center
	neutralCenter     = 3.0
	neutralVolatility = 0.5
	volatilityScale   = 0.4
	baselineScale     = 0.5
	seasonalNeutral   = 0.3
	seasonalImpact    = 0.2
	maxEventImpact    = 0.5
)

// seasonalFactors weighs each calendar month: spring/autumn peaks,
// winter/summer troughs.
var seasonalFactors = [12]float64{
	0.2, // Jan
	0.1, // Feb
	0.3, // Mar
	0.4, // Apr
	0.5, // May
	0.3, // Jun
	0.2, // Jul
	0.1, // Aug
	0.3, // Sep
	0.4, // Oct
	0.3, // Nov
	0.1, // Dec
}

// Pattern centers
const (
	centerNormal     = 3.0
	centerBimodalLow = 2.0
	centerBimodalHi  = 4.0
	centerStress     = 2.5
	centerHappy      = 3.5
)

// Generator produces one clamped emotion score per (config, date, student).
type Generator struct {
	variates *Variates
}

func NewGenerator(variates *Variates) *Generator {
	return &Generator{variates: variates}
}

// Generate composes the layered model for one record.
// The student index is part of the contract but does not bias the math;
// per-student shape comes entirely from the draws.
func (g *Generator) Generate(cfg Configuration, date time.Time, student int) float64 {
	v := g.baseDraw(cfg.Pattern)

	// class characteristics: spread rescaled around neutral volatility,
	// then shifted by how far the baseline sits from the neutral center
	v *= 1 + (cfg.Class.Volatility-neutralVolatility)*volatilityScale
	v += (cfg.Class.Baseline - neutralCenter) * baselineScale

	if cfg.SeasonalEffects {
		v += seasonalEffect(date)
	}
	v += eventEffect(date, cfg.Events)

	return clamp(v, MinEmotion, MaxEmotion)
}

// baseDraw picks the pattern center and adds normal noise.
// An unrecognized pattern yields the neutral center with no noise; the
// downstream transforms still apply to it.
func (g *Generator) baseDraw(pattern string) float64 {
	var center float64
	switch pattern {
	case PatternNormal:
		center = centerNormal
	case PatternBimodal:
		center = centerBimodalLow
		if g.variates.Uniform() < 0.5 {
			center = centerBimodalHi
		}
	case PatternStress:
		center = centerStress
	case PatternHappy:
		center = centerHappy
	default:
		return neutralCenter
	}
	return center + baseStdDev*g.variates.StandardNormal()
}

// seasonalEffect biases the score by the calendar month of date.
func seasonalEffect(date time.Time) float64 {
	return (seasonalFactors[date.Month()-1] - seasonalNeutral) * seasonalImpact
}

// eventEffect sums the contribution of every event whose inclusive window
// contains date. Intensity follows a sine bell over the window: zero at both
// edges, peaking mid-event. Overlapping events stack.
func eventEffect(date time.Time, events []EventEffect) float64 {
	var total float64
	for _, ev := range events {
		if date.Before(ev.StartDate) || date.After(ev.EndDate) {
			continue
		}
		var progress float64
		if dur := ev.EndDate.Sub(ev.StartDate); dur > 0 {
			progress = float64(date.Sub(ev.StartDate)) / float64(dur)
		}
		total += ev.Impact * math.Sin(progress*math.Pi) * maxEventImpact
	}
	return total
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

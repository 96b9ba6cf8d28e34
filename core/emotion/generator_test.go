package emotion

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerator_Generate_range(t *testing.T) {
	gen := NewGenerator(NewVariates(rand.New(rand.NewSource(13))))
	date := day(2025, time.May, 23)

	events := []EventEffect{
		{Name: "試験", StartDate: day(2025, time.May, 20), EndDate: day(2025, time.May, 26), Impact: -1},
		{Name: "遠足", StartDate: day(2025, time.May, 22), EndDate: day(2025, time.May, 24), Impact: 1},
	}

	tests := []struct {
		name string
		cfg  Configuration
	}{
		{name: "normal neutral class", cfg: Configuration{Pattern: PatternNormal, Class: DefaultClass()}},
		{name: "bimodal neutral class", cfg: Configuration{Pattern: PatternBimodal, Class: DefaultClass()}},
		{name: "stress low baseline max volatility", cfg: Configuration{
			Pattern: PatternStress,
			Class:   ClassCharacteristics{Baseline: 2.5, Volatility: 1.0, Cohesion: 0.1},
		}},
		{name: "happy high baseline seasonal events", cfg: Configuration{
			Pattern:         PatternHappy,
			SeasonalEffects: true,
			Events:          events,
			Class:           ClassCharacteristics{Baseline: 3.5, Volatility: 1.0, Cohesion: 1.0},
		}},
		{name: "unknown pattern", cfg: Configuration{Pattern: "lol", Class: DefaultClass()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 5000; i++ {
				v := gen.Generate(tt.cfg, date, i%30)
				if v < MinEmotion || v > MaxEmotion {
					t.Fatalf("Generate() = %v, want [%v, %v]", v, MinEmotion, MaxEmotion)
				}
			}
		})
	}
}

// An unrecognized pattern draws no noise: the base is exactly the neutral
// center, and only the deterministic transforms move it.
func TestGenerator_Generate_unknownPattern(t *testing.T) {
	gen := NewGenerator(NewVariates(rand.New(rand.NewSource(1))))
	date := day(2025, time.May, 23)

	neutral := Configuration{Pattern: "nope", Class: DefaultClass()}
	for i := 0; i < 100; i++ {
		assert.Equal(t, 3.0, gen.Generate(neutral, date, 0))
	}

	// baseline shift still applies downstream: 3.0 + (3.5-3.0)*0.5 = 3.25
	shifted := Configuration{
		Pattern: "nope",
		Class:   ClassCharacteristics{Baseline: 3.5, Volatility: 0.5, Cohesion: 0.5},
	}
	assert.InDelta(t, 3.25, gen.Generate(shifted, date, 0), 1e-9)
}

func TestGenerator_baseDraw_centers(t *testing.T) {
	gen := NewGenerator(NewVariates(rand.New(rand.NewSource(99))))

	tests := []struct {
		pattern string
		centers []float64
	}{
		{pattern: PatternNormal, centers: []float64{3.0}},
		{pattern: PatternBimodal, centers: []float64{2.0, 4.0}},
		{pattern: PatternStress, centers: []float64{2.5}},
		{pattern: PatternHappy, centers: []float64{3.5}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := 20000
			var sum float64
			for i := 0; i < n; i++ {
				sum += gen.baseDraw(tt.pattern)
			}
			mean := sum / float64(n)

			var want float64
			for _, c := range tt.centers {
				want += c
			}
			want /= float64(len(tt.centers))

			assert.InDelta(t, want, mean, 0.05)
		})
	}
}

func TestSeasonalEffect(t *testing.T) {
	tests := []struct {
		month time.Month
		want  float64
	}{
		{month: time.January, want: (0.2 - 0.3) * 0.2},
		{month: time.February, want: (0.1 - 0.3) * 0.2},
		{month: time.May, want: (0.5 - 0.3) * 0.2},
		{month: time.August, want: (0.1 - 0.3) * 0.2},
		{month: time.October, want: (0.4 - 0.3) * 0.2},
		{month: time.December, want: (0.1 - 0.3) * 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, seasonalEffect(day(2025, tt.month, 15)), 1e-9)
		})
	}
}

func TestEventEffect(t *testing.T) {
	event := EventEffect{
		Name:      "試験週間",
		StartDate: day(2025, time.May, 10),
		EndDate:   day(2025, time.May, 20),
		Impact:    -0.8,
	}

	tests := []struct {
		name   string
		date   time.Time
		events []EventEffect
		want   float64
	}{
		{name: "no events", date: day(2025, time.May, 15), events: nil, want: 0},
		{name: "before window", date: day(2025, time.May, 9), events: []EventEffect{event}, want: 0},
		{name: "after window", date: day(2025, time.May, 21), events: []EventEffect{event}, want: 0},
		{name: "window start", date: day(2025, time.May, 10), events: []EventEffect{event}, want: 0},
		{name: "window end", date: day(2025, time.May, 20), events: []EventEffect{event}, want: 0},
		{name: "mid-event peak", date: day(2025, time.May, 15), events: []EventEffect{event}, want: -0.8 * 0.5},
		{
			name: "zero-length window",
			date: day(2025, time.May, 10),
			events: []EventEffect{
				{Name: "発表会", StartDate: day(2025, time.May, 10), EndDate: day(2025, time.May, 10), Impact: 1},
			},
			want: 0,
		},
		{
			name: "overlapping events stack",
			date: day(2025, time.May, 15),
			events: []EventEffect{
				event,
				{Name: "文化祭", StartDate: day(2025, time.May, 13), EndDate: day(2025, time.May, 17), Impact: 0.6},
			},
			want: -0.8*0.5 + 0.6*math.Sin(0.5*math.Pi)*0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, eventEffect(tt.date, tt.events), 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, clamp(0.2, MinEmotion, MaxEmotion))
	assert.Equal(t, 5.0, clamp(6.7, MinEmotion, MaxEmotion))
	assert.Equal(t, 3.3, clamp(3.3, MinEmotion, MaxEmotion))
}

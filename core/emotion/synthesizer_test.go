package emotion

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestSynthesizer(seed int64, now time.Time) *Synthesizer {
	s := NewSynthesizer(NewVariates(rand.New(rand.NewSource(seed))))
	s.nowFunc = func() time.Time { return now }
	return s
}

func TestSynthesizer_Synthesize(t *testing.T) {
	now := time.Date(2025, time.May, 23, 14, 30, 0, 0, time.UTC)
	cfg := Configuration{
		StudentCount:    25,
		PeriodDays:      30,
		Pattern:         PatternNormal,
		SeasonalEffects: true,
		Class:           DefaultClass(),
	}

	records := newTestSynthesizer(1, now).Synthesize(cfg)

	// 1-3 records per student per day
	min := cfg.StudentCount * cfg.PeriodDays
	if len(records) < min || len(records) > 3*min {
		t.Fatalf("len(records) = %d, want [%d, %d]", len(records), min, 3*min)
	}

	today := Day(now)
	start := today.AddDate(0, 0, -cfg.PeriodDays)
	for _, r := range records {
		if r.Date.Before(start) || !r.Date.Before(today) {
			t.Fatalf("record date %v outside [%v, %v)", r.Date, start, today)
		}
		if !r.Date.Equal(Day(r.Date)) {
			t.Fatalf("record date %v not a UTC midnight", r.Date)
		}
		if r.Student < 0 || r.Student >= cfg.StudentCount {
			t.Fatalf("record student %d outside [0, %d)", r.Student, cfg.StudentCount)
		}
		if r.Hour < MinHour || r.Hour > MaxHour {
			t.Fatalf("record hour %d outside [%d, %d]", r.Hour, MinHour, MaxHour)
		}
		if r.Emotion < MinEmotion || r.Emotion > MaxEmotion {
			t.Fatalf("record emotion %v outside [%v, %v]", r.Emotion, MinEmotion, MaxEmotion)
		}
		if !r.Valid() {
			t.Fatalf("record %+v not valid", r)
		}
	}

	// student-major, days chronological: each student's records form a time series
	for i := 1; i < len(records); i++ {
		prev, curr := records[i-1], records[i]
		if curr.Student < prev.Student {
			t.Fatal("records not student-major")
		}
		if curr.Student == prev.Student && curr.Date.Before(prev.Date) {
			t.Fatal("a student's records not chronological")
		}
	}
}

func TestSynthesizer_Synthesize_reproducible(t *testing.T) {
	now := time.Date(2025, time.May, 23, 9, 0, 0, 0, time.UTC)
	cfg := Configuration{
		StudentCount: 10,
		PeriodDays:   7,
		Pattern:      PatternBimodal,
		Class:        DefaultClass(),
	}

	r1 := newTestSynthesizer(42, now).Synthesize(cfg)
	r2 := newTestSynthesizer(42, now).Synthesize(cfg)
	assert.Equal(t, r1, r2)
}

package stats

import (
	"fmt"
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"

	"github.com/trezcool/kokoro/core/emotion"
)

// dayLabels orders weekday buckets Sunday-first, matching time.Weekday.
var dayLabels = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// Day-part buckets: morning [5,12), afternoon [12,18), evening [18,24) plus
// the small hours before 5am (previous night's tail).
const (
	periodMorning   = "morning"
	periodAfternoon = "afternoon"
	periodEvening   = "evening"

	morningStart   = 5
	afternoonStart = 12
	eveningStart   = 18
)

const trendlineLen = 7

// Aggregate reduces records into the six dashboard views. It is pure and
// deterministic: same input, same output, input never mutated.
// Malformed rows are dropped up front so every view sees the same list.
func Aggregate(records []emotion.Record) Views {
	records = filterValid(records)
	return Views{
		Overview:            overview(records),
		MonthlyStats:        monthlyStats(records),
		StudentStats:        studentStats(records),
		DayOfWeekStats:      dayOfWeekStats(records),
		EmotionDistribution: emotionDistribution(records),
		TimeOfDayStats:      timeOfDayStats(records),
	}
}

func filterValid(records []emotion.Record) []emotion.Record {
	valid := make([]emotion.Record, 0, len(records))
	for _, r := range records {
		if r.Valid() {
			valid = append(valid, r)
		}
	}
	return valid
}

func overview(records []emotion.Record) Overview {
	emotions := make([]float64, 0, len(records))
	for _, r := range records {
		emotions = append(emotions, r.Emotion)
	}
	return Overview{
		Count:      len(records),
		AvgEmotion: avg(emotions),
	}
}

func monthlyStats(records []emotion.Record) []MonthlyStat {
	groups := make(map[string][]float64)
	for _, r := range records {
		key := r.Date.Format("2006-01")
		groups[key] = append(groups[key], r.Emotion)
	}

	months := make([]string, 0, len(groups))
	for month := range groups {
		months = append(months, month)
	}
	sort.Strings(months)

	out := make([]MonthlyStat, 0, len(months))
	for _, month := range months {
		out = append(out, MonthlyStat{
			Month:      month,
			AvgEmotion: avg(groups[month]),
			Count:      len(groups[month]),
		})
	}
	return out
}

// dayOfWeekStats always emits all 7 buckets, empty ones included.
func dayOfWeekStats(records []emotion.Record) []DayOfWeekStat {
	var groups [7][]float64
	for _, r := range records {
		wd := int(r.Date.Weekday())
		groups[wd] = append(groups[wd], r.Emotion)
	}

	out := make([]DayOfWeekStat, len(dayLabels))
	for i, label := range dayLabels {
		out[i] = DayOfWeekStat{
			Day:        label,
			AvgEmotion: avg(groups[i]),
			Count:      len(groups[i]),
		}
	}
	return out
}

func timeOfDayStats(records []emotion.Record) []TimeOfDayStat {
	var morning, afternoon, evening []float64
	for _, r := range records {
		switch {
		case r.Hour >= morningStart && r.Hour < afternoonStart:
			morning = append(morning, r.Emotion)
		case r.Hour >= afternoonStart && r.Hour < eveningStart:
			afternoon = append(afternoon, r.Emotion)
		default: // 18-23 and the 0-4 wrap
			evening = append(evening, r.Emotion)
		}
	}
	return []TimeOfDayStat{
		{Period: periodMorning, AvgEmotion: avg(morning), Count: len(morning)},
		{Period: periodAfternoon, AvgEmotion: avg(afternoon), Count: len(afternoon)},
		{Period: periodEvening, AvgEmotion: avg(evening), Count: len(evening)},
	}
}

// emotionDistribution is a 5-bucket histogram over floor(emotion)-1,
// clamped so an exact 5.0 lands in the top bucket.
func emotionDistribution(records []emotion.Record) []int {
	buckets := make([]int, 5)
	for _, r := range records {
		idx := int(math.Floor(r.Emotion)) - 1
		if idx < 0 {
			idx = 0
		}
		if idx > 4 {
			idx = 4
		}
		buckets[idx]++
	}
	return buckets
}

// studentStats relies on records arriving in insertion order: a student's
// values are already chronological, so the trendline is just their tail.
func studentStats(records []emotion.Record) []StudentStat {
	groups := make(map[int][]float64)
	for _, r := range records {
		groups[r.Student] = append(groups[r.Student], r.Emotion)
	}

	out := make([]StudentStat, 0, len(groups))
	for student, emotions := range groups {
		out = append(out, StudentStat{
			Student:     fmt.Sprintf("学生%d", student+1),
			RecordCount: len(emotions),
			AvgEmotion:  avg(emotions),
			Trendline:   trendline(emotions),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Student < out[j].Student })
	return out
}

func trendline(emotions []float64) []float64 {
	start := 0
	if len(emotions) > trendlineLen {
		start = len(emotions) - trendlineLen
	}
	out := make([]float64, 0, len(emotions)-start)
	for _, e := range emotions[start:] {
		out = append(out, round1(e))
	}
	return out
}

// avg is the mean rounded to one decimal; an empty group reports 0, never NaN.
func avg(emotions []float64) float64 {
	m, err := mstats.Mean(emotions)
	if err != nil {
		return 0
	}
	return round1(m)
}

// round1 keeps one decimal place. Applied only when exposing an aggregate,
// never to intermediate sums.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

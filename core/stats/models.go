package stats

type (
	// Overview summarizes the whole dataset.
	Overview struct {
		Count      int     `json:"count"`
		AvgEmotion float64 `json:"avgEmotion"`
	}

	// MonthlyStat is one "YYYY-MM" bucket.
	MonthlyStat struct {
		Month      string  `json:"month"`
		AvgEmotion float64 `json:"avgEmotion"`
		Count      int     `json:"count"`
	}

	// DayOfWeekStat is one weekday bucket, Sunday first.
	DayOfWeekStat struct {
		Day        string  `json:"day"`
		AvgEmotion float64 `json:"avgEmotion"`
		Count      int     `json:"count"`
	}

	// TimeOfDayStat is one of the three fixed day-part buckets.
	TimeOfDayStat struct {
		Period     string  `json:"period"`
		AvgEmotion float64 `json:"avgEmotion"`
		Count      int     `json:"count"`
	}

	// StudentStat summarizes one student, trendline holding their last 7
	// chronological values.
	StudentStat struct {
		Student     string    `json:"student"`
		RecordCount int       `json:"recordCount"`
		AvgEmotion  float64   `json:"avgEmotion"`
		Trendline   []float64 `json:"trendline"`
	}

	// Views bundles the six independent projections the dashboard renders.
	Views struct {
		Overview            Overview        `json:"overview"`
		MonthlyStats        []MonthlyStat   `json:"monthlyStats"`
		StudentStats        []StudentStat   `json:"studentStats"`
		DayOfWeekStats      []DayOfWeekStat `json:"dayOfWeekStats"`
		EmotionDistribution []int           `json:"emotionDistribution"`
		TimeOfDayStats      []TimeOfDayStat `json:"timeOfDayStats"`
	}
)

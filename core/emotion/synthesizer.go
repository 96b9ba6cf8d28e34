package emotion

import "time"

const maxRecordsPerDay = 3

// Synthesizer builds the full record population for a configuration.
type Synthesizer struct {
	gen      *Generator
	variates *Variates

	nowFunc func() time.Time // mockable
}

func NewSynthesizer(variates *Variates) *Synthesizer {
	return &Synthesizer{
		gen:      NewGenerator(variates),
		variates: variates,
		nowFunc:  time.Now,
	}
}

// Synthesize generates 1-3 records per student per day over
// [today - PeriodDays, today). Records are appended student-major, days in
// chronological order, so each student's slice of the result is already a
// time series.
func (s *Synthesizer) Synthesize(cfg Configuration) []Record {
	today := Day(s.nowFunc().UTC())
	start := today.AddDate(0, 0, -cfg.PeriodDays)

	records := make([]Record, 0, cfg.StudentCount*cfg.PeriodDays*2) // 2 records/day expected
	for student := 0; student < cfg.StudentCount; student++ {
		for day := 0; day < cfg.PeriodDays; day++ {
			date := start.AddDate(0, 0, day)
			count := int(s.variates.Uniform()*maxRecordsPerDay) + 1
			for i := 0; i < count; i++ {
				records = append(records, Record{
					Date:    date,
					Student: student,
					Emotion: s.gen.Generate(cfg, date, student),
					Hour:    MinHour + int(s.variates.Uniform()*(MaxHour-MinHour+1)),
				})
			}
		}
	}
	return records
}

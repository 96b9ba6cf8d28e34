package main

import (
	"fmt"

	"github.com/trezcool/kokoro/core/emotion"
)

// seed generates a fresh demo dataset and prints its overview.
// Zero/empty flags fall back to the configured demo defaults.
func (cli *commandLine) seed(students, days int, pattern string, seasonal bool) error {
	req := emotion.GenerationRequest{
		StudentCount:    students,
		PeriodDays:      days,
		Pattern:         pattern,
		SeasonalEffects: &seasonal,
	}
	cfg, err := req.Validate(cli.validate, cli.conf.Demo)
	if err != nil {
		return err
	}

	ds, err := cli.svc.Generate(cfg)
	if err != nil {
		return err
	}

	ov := ds.Stats.Overview
	fmt.Printf("dataset %s: %d records, %d students over %d days (%s)\n",
		ds.ID, ov.Count, cfg.StudentCount, cfg.PeriodDays, cfg.Pattern)
	fmt.Printf("average emotion: %.1f\n", ov.AvgEmotion)
	for _, ts := range ds.Stats.TimeOfDayStats {
		fmt.Printf("  %-9s : avg %.1f (%d records)\n", ts.Period, ts.AvgEmotion, ts.Count)
	}
	return nil
}

package dashboard

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/kokoro/core/emotion"
	"github.com/trezcool/kokoro/core/stats"
)

var (
	// errors
	ErrNoDataset = errors.New("no dataset has been generated yet")
)

type (
	// Dataset is one full generation run: the raw records plus their views.
	Dataset struct {
		ID          uuid.UUID             `json:"id"`
		GeneratedAt time.Time             `json:"generatedAt"` // UTC
		Config      emotion.Configuration `json:"config"`
		Records     []emotion.Record      `json:"records"`
		Stats       stats.Views           `json:"stats"`
	}

	Repository interface {
		// ReplaceDataset swaps the stored dataset for ds. There is at most
		// one dataset at a time.
		ReplaceDataset(ds Dataset) (Dataset, error)
		// LatestDataset returns the stored dataset or ErrNoDataset.
		LatestDataset() (Dataset, error)
	}

	Service struct {
		repo  Repository
		synth *emotion.Synthesizer
	}
)

func NewService(repo Repository, variates *emotion.Variates) *Service {
	return &Service{
		repo:  repo,
		synth: emotion.NewSynthesizer(variates),
	}
}

// Generate runs one synthesize+aggregate pass over cfg and seeds the store
// with the result. The run is a single synchronous unit; no partial dataset
// is ever stored.
func (svc *Service) Generate(cfg emotion.Configuration) (Dataset, error) {
	records := svc.synth.Synthesize(cfg)
	ds := Dataset{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Config:      cfg,
		Records:     records,
		Stats:       stats.Aggregate(records),
	}
	return svc.repo.ReplaceDataset(ds)
}

// Latest returns the most recently generated dataset, raw records included.
func (svc *Service) Latest() (Dataset, error) {
	return svc.repo.LatestDataset()
}

// Stats returns the most recently generated aggregate views.
func (svc *Service) Stats() (stats.Views, error) {
	ds, err := svc.repo.LatestDataset()
	if err != nil {
		return stats.Views{}, err
	}
	return ds.Stats, nil
}

package inmemdb

import (
	"github.com/trezcool/kokoro/core/dashboard"
)

type datasetRepository struct {
	db *datasetSlot
}

func NewDatasetRepository(db *DB) dashboard.Repository {
	return &datasetRepository{db: db.dataset}
}

func (repo *datasetRepository) ReplaceDataset(ds dashboard.Dataset) (dashboard.Dataset, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.current = &ds
	return ds, nil
}

func (repo *datasetRepository) LatestDataset() (dashboard.Dataset, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if repo.db.current == nil {
		return dashboard.Dataset{}, dashboard.ErrNoDataset
	}
	return *repo.db.current, nil
}

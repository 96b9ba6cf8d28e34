package inmemdb

import (
	"sync"

	"github.com/trezcool/kokoro/core/dashboard"
)

type (
	DB struct {
		dataset *datasetSlot
	}

	// datasetSlot holds at most one dataset; seeding replaces it wholesale.
	datasetSlot struct {
		sync.RWMutex
		current *dashboard.Dataset
	}
)

func Open() (*DB, error) {
	db := &DB{
		dataset: &datasetSlot{},
	}
	return db, nil
}

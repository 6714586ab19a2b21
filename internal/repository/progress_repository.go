package repository

import (
	"sync"
	"time"

	"safemit_training_backend/internal/model"
)

type progressKey struct {
	learnerID string
	moduleID  string
}

// ProgressRepository keeps per-(learner, module) progress records in memory.
// The lock protects the map itself; serializing writes to one record across
// callers is the surrounding application's responsibility by contract.
type ProgressRepository struct {
	mu      sync.RWMutex
	records map[progressKey]*model.ProgressRecord
}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{records: make(map[progressKey]*model.ProgressRecord)}
}

// GetOrCreate returns the record for the pair, creating it on first
// interaction with the module.
func (r *ProgressRepository) GetOrCreate(learnerID, moduleID string) *model.ProgressRecord {
	key := progressKey{learnerID, moduleID}

	r.mu.Lock()
	defer r.mu.Unlock()
	if record, ok := r.records[key]; ok {
		return record
	}
	record := model.NewProgressRecord(learnerID, moduleID)
	r.records[key] = record
	return record
}

func (r *ProgressRepository) Find(learnerID, moduleID string) (*model.ProgressRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[progressKey{learnerID, moduleID}]
	return record, ok
}

// Save stamps the record. The store is in-memory, so the record already is
// the stored value; this is the seam a persistent store would replace.
func (r *ProgressRepository) Save(record *model.ProgressRecord) {
	record.UpdatedAt = time.Now()
}

func (r *ProgressRepository) ListByModule(moduleID string) []*model.ProgressRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var records []*model.ProgressRecord
	for key, record := range r.records {
		if key.moduleID == moduleID {
			records = append(records, record)
		}
	}
	return records
}

func (r *ProgressRepository) ListByLearner(learnerID string) []*model.ProgressRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var records []*model.ProgressRecord
	for key, record := range r.records {
		if key.learnerID == learnerID {
			records = append(records, record)
		}
	}
	return records
}

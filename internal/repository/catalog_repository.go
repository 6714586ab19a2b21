package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/util"
)

// CatalogRepository holds the authored training content. Content is loaded
// once (from a JSON content file or the built-in seed) and is read-only for
// the duration of a learner session.
type CatalogRepository struct {
	mu      sync.RWMutex
	modules []model.TrainingModule
	byID    map[string]*model.TrainingModule
}

func NewCatalogRepository() *CatalogRepository {
	r := &CatalogRepository{}
	// 默认使用内置种子内容，直到加载正式的内容文件
	if err := r.Replace(seedModules()); err != nil {
		panic(fmt.Sprintf("invalid seed catalog: %v", err))
	}
	return r
}

// LoadFile replaces the catalog with the modules decoded from a JSON content
// file produced by content authors.
func (r *CatalogRepository) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read content file: %w", err)
	}
	var modules []model.TrainingModule
	if err := json.Unmarshal(data, &modules); err != nil {
		return fmt.Errorf("decode content file: %w", err)
	}
	return r.Replace(modules)
}

// Replace validates and installs a new module set. Lesson order values must
// be unique within a module; unknown prerequisite ids are tolerated (they
// resolve as "not completed" rather than breaking navigation).
func (r *CatalogRepository) Replace(modules []model.TrainingModule) error {
	byID := make(map[string]*model.TrainingModule, len(modules))
	for i := range modules {
		m := &modules[i]
		if m.ID == "" {
			return fmt.Errorf("module %d: missing id", i)
		}
		if _, exists := byID[m.ID]; exists {
			return fmt.Errorf("module %q: duplicate id", m.ID)
		}
		orders := make(map[int]string, len(m.Lessons))
		for j := range m.Lessons {
			lesson := &m.Lessons[j]
			if lesson.ID == "" {
				return fmt.Errorf("module %q: lesson %d missing id", m.ID, j)
			}
			if other, dup := orders[lesson.Order]; dup {
				return fmt.Errorf("module %q: lessons %q and %q: %w", m.ID, other, lesson.ID, util.ErrDuplicateOrder)
			}
			orders[lesson.Order] = lesson.ID
			lesson.ModuleID = m.ID
		}
		byID[m.ID] = m
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules = modules
	r.byID = byID
	return nil
}

func (r *CatalogRepository) FindAll() []model.TrainingModule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	modules := make([]model.TrainingModule, len(r.modules))
	copy(modules, r.modules)
	return modules
}

func (r *CatalogRepository) FindByID(id string) (*model.TrainingModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, util.ErrModuleNotFound
	}
	return m, nil
}

func (r *CatalogRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}

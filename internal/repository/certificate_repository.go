package repository

import (
	"sync"

	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/util"
)

type certificateKey struct {
	learnerID string
	moduleID  string
}

// CertificateRepository stores issued certificates in memory, indexed for
// the three lookups the API needs: by (learner, module), by verification
// code, and by learner. At most one certificate per (learner, module) is
// retained.
type CertificateRepository struct {
	mu        sync.RWMutex
	byPair    map[certificateKey]*model.Certificate
	byCode    map[string]*model.Certificate
	byLearner map[string][]*model.Certificate
}

func NewCertificateRepository() *CertificateRepository {
	return &CertificateRepository{
		byPair:    make(map[certificateKey]*model.Certificate),
		byCode:    make(map[string]*model.Certificate),
		byLearner: make(map[string][]*model.Certificate),
	}
}

func (r *CertificateRepository) Save(cert *model.Certificate) {
	key := certificateKey{cert.LearnerID, cert.ModuleID}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byPair[key] = cert
	r.byCode[cert.VerificationCode] = cert
	r.byLearner[cert.LearnerID] = append(r.byLearner[cert.LearnerID], cert)
}

func (r *CertificateRepository) FindByLearnerAndModule(learnerID, moduleID string) (*model.Certificate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cert, ok := r.byPair[certificateKey{learnerID, moduleID}]
	return cert, ok
}

func (r *CertificateRepository) FindByCode(code string) (*model.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cert, ok := r.byCode[code]
	if !ok {
		return nil, util.ErrCertificateNotFound
	}
	return cert, nil
}

func (r *CertificateRepository) ListByLearner(learnerID string) []model.Certificate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	certs := make([]model.Certificate, 0, len(r.byLearner[learnerID]))
	for _, cert := range r.byLearner[learnerID] {
		certs = append(certs, *cert)
	}
	return certs
}

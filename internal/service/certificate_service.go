package service

import (
	"crypto/rand"
	"math/big"

	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/repository"
	"safemit_training_backend/internal/util"
	"safemit_training_backend/pkg/monitoring"

	"github.com/google/uuid"
)

const (
	verificationPrefix    = "SAFE-MIT-"
	verificationSuffixLen = 9
	verificationCharset   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type CertificateService struct {
	Certificates *repository.CertificateRepository
}

func NewCertificateService(certRepo *repository.CertificateRepository) *CertificateService {
	return &CertificateService{Certificates: certRepo}
}

// Issue mints a certificate for a passing quiz result. Issuance is
// idempotent per (learner, module): a later passing attempt returns the
// original certificate instead of minting a second valid code. The issuance
// timestamp is the moment of the passing result.
func (s *CertificateService) Issue(learnerID string, module *model.TrainingModule, result *model.QuizResult) (*model.Certificate, error) {
	if result == nil || !result.Passed {
		return nil, util.ErrNotPassed
	}

	if existing, ok := s.Certificates.FindByLearnerAndModule(learnerID, module.ID); ok {
		return existing, nil
	}

	code, err := newVerificationCode()
	if err != nil {
		return nil, err
	}
	cert := &model.Certificate{
		ID:               uuid.New().String(),
		LearnerID:        learnerID,
		ModuleID:         module.ID,
		ModuleTitle:      module.Title,
		IssuedAt:         result.CompletedAt,
		VerificationCode: code,
	}
	s.Certificates.Save(cert)
	monitoring.CertificatesIssued.Inc()
	return cert, nil
}

// Verify resolves a verification code to its certificate.
func (s *CertificateService) Verify(code string) (*model.Certificate, error) {
	return s.Certificates.FindByCode(code)
}

func (s *CertificateService) ForLearner(learnerID string) []model.Certificate {
	return s.Certificates.ListByLearner(learnerID)
}

func newVerificationCode() (string, error) {
	suffix := make([]byte, verificationSuffixLen)
	max := big.NewInt(int64(len(verificationCharset)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = verificationCharset[n.Int64()]
	}
	return verificationPrefix + string(suffix), nil
}

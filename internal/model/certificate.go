package model

import "time"

// Certificate is an issued, verifiable record of a passing quiz result for a
// module. Immutable once issued; at most one active certificate exists per
// (learner, module) pair.
type Certificate struct {
	ID               string    `json:"id"`
	LearnerID        string    `json:"learnerId"`
	ModuleID         string    `json:"moduleId"`
	ModuleTitle      string    `json:"moduleTitle"`
	IssuedAt         time.Time `json:"issuedAt"`
	VerificationCode string    `json:"verificationCode"`
}

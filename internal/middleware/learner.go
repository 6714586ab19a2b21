package middleware

import (
	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	// LearnerHeader carries the opaque learner identifier established by the
	// external auth collaborator. This backend never validates credentials.
	LearnerHeader = "X-Learner-ID"
	RoleHeader    = "X-Learner-Role"

	learnerKey = "learnerID"
	roleKey    = "learnerRole"
)

// LearnerMiddleware requires a learner identity on the request.
func LearnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		learnerID := c.GetHeader(LearnerHeader)
		if learnerID == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(learnerKey, learnerID)
		c.Set(roleKey, c.GetHeader(RoleHeader))
		c.Next()
	}
}

// RoleMiddleware gates a route on the caller's role. Admins pass every
// check.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := model.UserRole(c.GetString(roleKey))
		if role == "" {
			util.Forbidden(c, "role required")
			c.Abort()
			return
		}

		hasRole := role == model.RoleAdmin
		for _, allowed := range roles {
			if role == allowed {
				hasRole = true
				break
			}
		}
		if !hasRole {
			util.Forbidden(c, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetLearnerID returns the learner identity set by LearnerMiddleware, or an
// empty string on unauthenticated routes.
func GetLearnerID(c *gin.Context) string {
	return c.GetString(learnerKey)
}

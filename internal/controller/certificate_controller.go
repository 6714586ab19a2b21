package controller

import (
	"errors"

	"safemit_training_backend/internal/middleware"
	"safemit_training_backend/internal/service"
	"safemit_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certService}
}

// @Summary List my certificates
// @Tags certificates
// @Produce json
// @Success 200 {object} util.Response
// @Router /training/certificates [get]
func (c *CertificateController) ListCertificates(ctx *gin.Context) {
	util.Success(ctx, c.CertificateService.ForLearner(middleware.GetLearnerID(ctx)))
}

// @Summary Verify a certificate
// @Description Public lookup of a certificate by its verification code
// @Tags certificates
// @Produce json
// @Param code path string true "Verification code"
// @Success 200 {object} util.Response
// @Router /training/certificates/verify/{code} [get]
func (c *CertificateController) VerifyCertificate(ctx *gin.Context) {
	cert, err := c.CertificateService.Verify(ctx.Param("code"))
	if err != nil {
		if errors.Is(err, util.ErrCertificateNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cert)
}

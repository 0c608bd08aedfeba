package api

import (
	"errors"
	"net/http"

	"cinebooking/internal/domain"
	"cinebooking/internal/repository"
	"github.com/gin-gonic/gin"
)

// writeError maps the error taxonomy onto HTTP statuses. Charged-but-not-
// recorded responses carry the charge id so the caller has a reconciliation
// handle.
func writeError(c *gin.Context, err error) {
	var cnr *domain.ChargedNotRecordedError
	if errors.As(err, &cnr) {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrSeatConflict) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error(), "chargeId": cnr.ChargeID})
		return
	}

	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsPaymentDeclined(err):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case isGatewayError(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrSeatConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isGatewayError(err error) bool {
	var ge *domain.PaymentGatewayError
	return errors.As(err, &ge)
}

package api

import (
	"context"
	"net/http"

	"cinebooking/internal/domain"
	"cinebooking/internal/validate"
	"github.com/gin-gonic/gin"
)

type Sender interface {
	Send(ctx context.Context, payload domain.NotificationPayload) error
}

type NotificationHandler struct {
	validator Validator
	sender    Sender
}

type Validator interface {
	Validate(input any, schema string) error
}

type sendEmailRequest struct {
	Payload domain.NotificationPayload `json:"payload"`
}

func NewNotificationHandler(validator Validator, sender Sender) *NotificationHandler {
	return &NotificationHandler{validator: validator, sender: sender}
}

func (h *NotificationHandler) Register(router *gin.RouterGroup) {
	router.POST("/notification/sendEmail", h.sendEmail)
	router.POST("/notification/sendSMS", h.sendSMS)
}

func (h *NotificationHandler) sendEmail(c *gin.Context) {
	var req sendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.validator.Validate(req.Payload, validate.SchemaNotification); err != nil {
		writeError(c, err)
		return
	}

	if err := h.sender.Send(c.Request.Context(), req.Payload); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *NotificationHandler) sendSMS(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": "sms delivery is not available"})
}

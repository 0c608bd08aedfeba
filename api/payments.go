package api

import (
	"net/http"

	"cinebooking/internal/domain"
	paymentsvc "cinebooking/internal/service/payment"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service paymentsvc.PurchaseUseCase
}

type makePurchaseRequest struct {
	PaymentOrder domain.PaymentOrder `json:"paymentOrder"`
}

func NewPaymentHandler(service paymentsvc.PurchaseUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.POST("/payment/makePurchase", h.makePurchase)
	router.GET("/payment/getPurchaseById/:id", h.getPurchaseByID)
}

func (h *PaymentHandler) makePurchase(c *gin.Context) {
	var req makePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paid, err := h.service.MakePurchase(c.Request.Context(), req.PaymentOrder)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paid": paid})
}

func (h *PaymentHandler) getPurchaseByID(c *gin.Context) {
	purchase, err := h.service.GetPurchaseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": purchase})
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/lifeosapp/backend/internal/application"
	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/pkg/response"
	"github.com/lifeosapp/backend/pkg/validation"
)

type FinanceHandler struct {
	Svc    *app.FinanceService
	Logger *logrus.Logger
}

func NewFinanceHandler(svc *app.FinanceService, logger *logrus.Logger) *FinanceHandler {
	return &FinanceHandler{Svc: svc, Logger: logger}
}

type createTransactionRequest struct {
	Type     string     `json:"type" binding:"required,oneof=income expense"`
	Amount   float64    `json:"amount" binding:"required,gt=0"`
	Category string     `json:"category"`
	Date     *time.Time `json:"date"`
}

func transactionJSON(t entity.Transaction) gin.H {
	return gin.H{
		"id":       t.ID,
		"type":     t.Type,
		"amount":   t.Amount,
		"category": t.Category,
		"date":     t.Date,
	}
}

func (h *FinanceHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := app.CreateTransactionInput{
		Type:     entity.TransactionType(req.Type),
		Amount:   req.Amount,
		Category: req.Category,
	}
	if req.Date != nil {
		in.Date = *req.Date
	}

	tx, err := h.Svc.CreateTransaction(c.Request.Context(), uid, in)
	if err != nil {
		h.Logger.WithError(err).Error("create transaction failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create transaction", nil)
		return
	}
	response.Success(c, http.StatusCreated, transactionJSON(*tx), "transaction created", nil)
}

func (h *FinanceHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	txs, err := h.Svc.ListTransactions(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list transactions", nil)
		return
	}
	out := make([]gin.H, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionJSON(t))
	}
	response.Success(c, http.StatusOK, out, "transactions", map[string]any{"count": len(out)})
}

func (h *FinanceHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.DeleteTransaction(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, app.ErrTransactionNotFound) {
			response.Error[any](c, http.StatusNotFound, "transaction not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete transaction failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete transaction", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "transaction deleted", nil)
}

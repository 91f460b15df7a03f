// Package transactiondelivery manages delivery layer of ledger transactions.
package transactiondelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
	"github.com/go-petr/gic-bank/pkg/errorspkg"
	"github.com/go-petr/gic-bank/pkg/moneypkg"
	"github.com/go-petr/gic-bank/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Record(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string) []domain.Transaction
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) *Handler {
	return &Handler{service: ts}
}

type createRequest struct {
	Date    string `json:"date" binding:"required,yyyymmdd"`
	Account string `json:"account" binding:"required,max=32"`
	Type    string `json:"type" binding:"required,txtype"`
	Amount  string `json:"amount" binding:"required,amount"`
}

type data struct {
	Transaction  *domain.Transaction  `json:"transaction,omitempty"`
	Transactions []domain.Transaction `json:"transactions"`
}

// Create handles http request to record a deposit or a withdrawal. The
// response lists every transaction of the account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	// The binding tags already validated these.
	date, _ := datepkg.Parse(req.Date)
	amount, _ := moneypkg.ParseAmount(req.Amount)
	typ, _ := domain.ParseTransactionType(req.Type)

	tx, err := h.service.Record(ctx, domain.CreateTransactionParams{
		Date:      date,
		AccountID: req.Account,
		Type:      typ,
		Amount:    amount,
	})
	if err != nil {
		switch err {
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrSequenceExhausted:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case
			domain.ErrInvalidAccountID,
			domain.ErrInvalidAmount,
			domain.ErrInvalidTransactionType,
			domain.ErrInsufficientFunds,
			domain.ErrFutureDate:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: data{
			Transaction:  &tx,
			Transactions: h.service.ListByAccount(ctx, tx.AccountID),
		},
	})
}

type listRequest struct {
	ID string `uri:"id" binding:"required,max=32"`
}

// ListByAccount handles http request to list the transactions of an account.
func (h *Handler) ListByAccount(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: data{Transactions: h.service.ListByAccount(ctx, req.ID)},
	})
}

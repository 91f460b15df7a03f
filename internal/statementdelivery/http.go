// Package statementdelivery manages delivery layer of account statements.
package statementdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
	"github.com/go-petr/gic-bank/pkg/errorspkg"
	"github.com/go-petr/gic-bank/pkg/web"
)

// Service provides service layer interface needed by statement delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package statementdelivery
type Service interface {
	Print(ctx context.Context, accountID string, month datepkg.Month) (domain.Statement, error)
}

// Handler facilitates statement delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns statement handler.
func NewHandler(ss Service) *Handler {
	return &Handler{service: ss}
}

type printRequest struct {
	Account string `json:"account" binding:"required,max=32"`
	Month   string `json:"month" binding:"required,yyyymm"`
}

type data struct {
	Statement domain.Statement `json:"statement"`
}

// Print handles http request to print the monthly statement of an account.
func (h *Handler) Print(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req printRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	month, _ := datepkg.ParseMonth(req.Month)

	statement, err := h.service.Print(ctx, req.Account, month)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{Statement: statement}})
}

// Package ruledelivery manages delivery layer of interest rules.
package ruledelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
	"github.com/go-petr/gic-bank/pkg/errorspkg"
	"github.com/go-petr/gic-bank/pkg/moneypkg"
	"github.com/go-petr/gic-bank/pkg/web"
)

// Service provides service layer interface needed by rule delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ruledelivery
type Service interface {
	Upsert(ctx context.Context, date datepkg.Date, ruleID string, rate decimal.Decimal) (domain.InterestRule, error)
	List(ctx context.Context) []domain.InterestRule
}

// Handler facilitates rule delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns rule handler.
func NewHandler(rs Service) *Handler {
	return &Handler{service: rs}
}

type createRequest struct {
	Date   string `json:"date" binding:"required,yyyymmdd"`
	RuleID string `json:"rule_id" binding:"required,max=32"`
	Rate   string `json:"rate" binding:"required"`
}

type data struct {
	Rule  *domain.InterestRule  `json:"rule,omitempty"`
	Rules []domain.InterestRule `json:"rules"`
}

// Create handles http request to define an interest rule. The response
// lists every rule by effective date.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	date, _ := datepkg.Parse(req.Date)

	rate, err := moneypkg.ParseDecimal(req.Rate)
	if err != nil {
		l.Info().Err(err).Str("rate", req.Rate).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidRate))

		return
	}

	rule, err := h.service.Upsert(ctx, date, req.RuleID, rate)
	if err != nil {
		switch err {
		case domain.ErrInvalidRate, domain.ErrInvalidRuleID, domain.ErrFutureDate:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: data{
			Rule:  &rule,
			Rules: h.service.List(ctx),
		},
	})
}

// List handles http request to list the interest rules.
func (h *Handler) List(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, web.Response{
		Data: data{Rules: h.service.List(gctx.Request.Context())},
	})
}

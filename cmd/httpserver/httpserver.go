// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/gic-bank/internal/accountdelivery"
	"github.com/go-petr/gic-bank/internal/accountrepo"
	"github.com/go-petr/gic-bank/internal/accountservice"
	"github.com/go-petr/gic-bank/internal/interestservice"
	"github.com/go-petr/gic-bank/internal/middleware"
	"github.com/go-petr/gic-bank/internal/ruledelivery"
	"github.com/go-petr/gic-bank/internal/rulerepo"
	"github.com/go-petr/gic-bank/internal/ruleservice"
	"github.com/go-petr/gic-bank/internal/statementdelivery"
	"github.com/go-petr/gic-bank/internal/statementservice"
	"github.com/go-petr/gic-bank/internal/transactiondelivery"
	"github.com/go-petr/gic-bank/internal/transactionrepo"
	"github.com/go-petr/gic-bank/internal/transactionservice"
	"github.com/go-petr/gic-bank/pkg/configpkg"
	"github.com/go-petr/gic-bank/pkg/web"
)

// Server holds handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes. Every server
// owns a fresh in-memory ledger.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountService := accountservice.New(accountrepo.NewRepoMem())
	transactionService := transactionservice.New(transactionrepo.NewRepoMem(), accountService, config.AutoCreateAccount)
	ruleService := ruleservice.New(rulerepo.NewRepoMem())
	interestService := interestservice.New(transactionService, ruleService)
	statementService := statementservice.New(transactionService, accountService, interestService)

	accountHandler := accountdelivery.NewHandler(accountService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)
	ruleHandler := ruledelivery.NewHandler(ruleService)
	statementHandler := statementdelivery.NewHandler(statementService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.GET("/accounts", accountHandler.List)

	engine.POST("/transactions", transactionHandler.Create)
	engine.GET("/accounts/:id/transactions", transactionHandler.ListByAccount)

	engine.POST("/interest-rules", ruleHandler.Create)
	engine.GET("/interest-rules", ruleHandler.List)

	engine.POST("/statements", statementHandler.Print)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := web.RegisterValidations(v); err != nil {
			return nil, errors.New("cannot register request validators")
		}
	}

	server := &Server{
		Engine: engine,
		Config: config,
	}

	return server, nil
}

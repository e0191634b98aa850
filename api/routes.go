package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/hoaikthai/fin-api/internal/handlers/v1/account"
	"github.com/hoaikthai/fin-api/internal/handlers/v1/category"
	"github.com/hoaikthai/fin-api/internal/handlers/v1/recurring"
	"github.com/hoaikthai/fin-api/internal/handlers/v1/status"
	"github.com/hoaikthai/fin-api/internal/handlers/v1/transaction"
	"github.com/hoaikthai/fin-api/internal/handlers/v1/transfer"
	"github.com/hoaikthai/fin-api/internal/logging"
	"github.com/hoaikthai/fin-api/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("fin-api", "1.0.0"))
	r.registerHandlers(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           withLogData(r.Logger, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func (r *Rest) registerHandlers(humaAPI huma.API) {
	account.NewCreateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewManageAccountHandler(r.Service.Account).Register(humaAPI)

	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewManageCategoryHandler(r.Service.Category).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewManageTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewImportTransactionsHandler(r.Service.Transaction).Register(humaAPI)

	transfer.NewCreateTransferHandler(r.Service.Transfer).Register(humaAPI)

	recurring.NewManageRecurringHandler(r.Service.Recurring).Register(humaAPI)
}

// withLogData gives every request a LogData so handlers can record timings
// and counts.
func withLogData(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		req = req.WithContext(logging.WithLogData(req.Context(), logging.NewLogData(log)))
		next.ServeHTTP(w, req)
	})
}

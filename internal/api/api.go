package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/demilade/chopbot/internal/chat"
	"github.com/demilade/chopbot/internal/config"
)

type API struct {
	router *mux.Router
	engine *chat.Engine
	config *config.Config
}

func New(cfg *config.Config, engine *chat.Engine) *API {
	api := &API{
		router: mux.NewRouter(),
		engine: engine,
		config: cfg,
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	a.router.HandleFunc("/api/chat", a.handleChat).Methods("POST")
	a.router.HandleFunc("/api/payment/callback", a.handlePaymentCallback).Methods("GET")
	a.router.HandleFunc("/healthz", a.handleHealth).Methods("GET")

	// The chat frontend is plain static files.
	a.router.PathPrefix("/").Handler(http.FileServer(http.Dir(a.config.StaticDir)))
}

// Handler returns the router with CORS applied. Exposed so tests can
// drive it with httptest.
func (a *API) Handler() http.Handler {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}
	return cors.New(corsOptions).Handler(a.router)
}

func (a *API) Start() error {
	logrus.Infof("server listening on http://%s", a.config.WebBind)
	return http.ListenAndServe(a.config.WebBind, a.Handler())
}

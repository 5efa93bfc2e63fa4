// Package api wires the public read-only endpoints onto the router
package api

import (
	stdhttp "net/http"

	"routedata/internal/core/query"
	"routedata/internal/modkit/httpkit"
	"routedata/internal/modkit/swaggerkit"
	"routedata/internal/platform/config"
	"routedata/internal/platform/logger"
	"routedata/internal/platform/net/middleware"
	"routedata/internal/platform/store/postgrest"

	asninfohttp "routedata/internal/services/api/asninfo/http"
	asninforepo "routedata/internal/services/api/asninfo/repo"
	asninfosvc "routedata/internal/services/api/asninfo/service"
	brokerhttp "routedata/internal/services/api/broker/http"
	brokerrepo "routedata/internal/services/api/broker/repo"
	brokersvc "routedata/internal/services/api/broker/service"
	peershttp "routedata/internal/services/api/peers/http"
	peersrepo "routedata/internal/services/api/peers/repo"
	peerssvc "routedata/internal/services/api/peers/service"
	roashttp "routedata/internal/services/api/roas/http"
	roasrepo "routedata/internal/services/api/roas/repo"
	roassvc "routedata/internal/services/api/roas/service"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options configures the API surface
type Options struct {
	Config        config.Conf
	Store         *postgrest.Client
	EnableSwagger bool
}

// Mount attaches middleware and all endpoints to the router
func Mount(r httpkit.Router, opt Options) {
	if opt.Store == nil {
		panic("api.Mount requires a non nil store client")
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestScope)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{stdhttp.MethodGet, stdhttp.MethodPost},
	}))
	r.Use(middleware.AccessLog)
	r.Use(middleware.RecoverJSON)

	policy := query.PolicyFromEnv(opt.Config.MayBool("STRICT_PARAMS", false))

	asninfohttp.Register(r, asninfosvc.New(asninforepo.New(opt.Store)))
	roashttp.Register(r, roassvc.New(roasrepo.New(opt.Store)))
	brokerhttp.Register(r, brokersvc.New(brokerrepo.New(opt.Store, policy)))
	peershttp.Register(r, peerssvc.New(peersrepo.New(opt.Store)))

	r.Get("/health_check", healthCheck)

	swaggerkit.Mount(r, opt.EnableSwagger)

	logger.Named("api").Info().Msg("api mounted")
}

// healthCheck answers 200 with an empty body
//
// @Summary Health check
// @Tags meta
// @Success 200 "service is up"
// @Router /health_check [get]
func healthCheck(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	w.WriteHeader(stdhttp.StatusOK)
}

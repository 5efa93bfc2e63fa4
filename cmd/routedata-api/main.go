// @title         Route Data API
// @version       0.1.0
// @description   Read-only endpoints for Internet routing metadata: AS
// @description   registry info, ROA history, MRT file listings, and route
// @description   collector peer statistics

package main

import (
	"context"

	"routedata/internal/platform/config"
	"routedata/internal/platform/logger"
	phttp "routedata/internal/platform/net/http"
	"routedata/internal/platform/store/postgrest"
	"routedata/internal/services/api"

	"github.com/joho/godotenv"
)

func main() {
	// local development reads a .env file; absence is fine
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("API_")
	pgrCfg := root.Prefix("POSTGREST_")

	l := logger.Get()

	// one long-lived store client shared by reference across requests
	st := postgrest.FromEnv(pgrCfg)

	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config:        apiCfg,
		Store:         st,
		EnableSwagger: apiCfg.MayBool("SWAGGER", true),
	})

	l.Info().Str("addr", srv.Addr()).Msg("docs available at /docs")
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

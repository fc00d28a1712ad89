package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerSearchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/players/search", RequireAuth(verifier, http.HandlerFunc(handler.SearchPlayers)))
	mux.Handle("GET /v1/players/quick-search", RequireAuth(verifier, http.HandlerFunc(handler.QuickSearchPlayers)))
	mux.Handle("GET /v1/players/mine", RequireAuth(verifier, http.HandlerFunc(handler.ListMyPlayers)))
}

func registerSavedSearchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/saved-searches", RequireAuth(verifier, http.HandlerFunc(handler.CreateSavedSearch)))
	mux.Handle("GET /v1/saved-searches", RequireAuth(verifier, http.HandlerFunc(handler.ListSavedSearches)))
	mux.Handle("GET /v1/saved-searches/{searchID}", RequireAuth(verifier, http.HandlerFunc(handler.GetSavedSearch)))
	mux.Handle("POST /v1/saved-searches/{searchID}/run", RequireAuth(verifier, http.HandlerFunc(handler.RunSavedSearch)))
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// routeGroup is a collaborator mounted under a path prefix.
type routeGroup struct {
	prefix string
	router http.Handler
}

// Init builds the router: standard middleware, service routes and the four
// route groups mounted under /client, /general, /management and /sales.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		h.withRecovery,
		h.withSecurityHeaders,
		h.withCORS(),
		h.withRateLimit,
		h.withBodyParsing,
		middleware.Compress(5),
	)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.index)
	router.Get("/healthz", h.healthz)
	router.Get("/version", h.getServerVersion)

	mountRouteGroups(router, h.routeGroups())

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) routeGroups() []routeGroup {
	return []routeGroup{
		{prefix: "/client", router: h.clientRoutes()},
		{prefix: "/general", router: h.generalRoutes()},
		{prefix: "/management", router: h.managementRoutes()},
		{prefix: "/sales", router: h.salesRoutes()},
	}
}

// mountRouteGroups mounts every group under its own prefix. A request below
// one prefix is only ever seen by that group.
func mountRouteGroups(router chi.Router, groups []routeGroup) {
	for _, group := range groups {
		router.Mount(group.prefix, group.router)
	}
}

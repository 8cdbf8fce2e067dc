// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/app"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with 405 Method Not Allowed when a path matches a route but
// the method is not handled. This handler answers 404 with the JSON
// not-found body instead, so that unsupported methods look exactly like
// unknown paths.
//
// If the requested method IS registered for a route whose pattern equals
// the request path, the request is forwarded to the router. Parameterised
// and mounted patterns never match the raw path, so requests under a route
// group always get the 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			writeMessage(w, r, http.StatusNotFound, app.MsgRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// notFound answers unknown paths with the JSON not-found body.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, http.StatusNotFound, app.MsgRouteNotFound)
}

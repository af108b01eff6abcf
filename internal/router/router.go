package router

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/nikmy/classbook/internal/wire"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

type Params map[string]string

type Handler func(req *wire.Request, params Params) *wire.Response

type Route struct {
	Name    string
	Method  string
	Pattern string
	Handler Handler
}

type compiledRoute struct {
	Route
	pattern pattern
}

type Router struct {
	routes []compiledRoute
	log    logger.Logger
}

// New compiles the table. Matching is first-match-wins, exact paths
// before trailing segments before middle segments, table order within
// each class.
func New(log logger.Logger, routes ...Route) (*Router, error) {
	compiled := make([]compiledRoute, 0, len(routes))
	for _, r := range routes {
		if r.Handler == nil {
			return nil, errors.Errorf("route %s %s has no handler", r.Method, r.Pattern)
		}

		p, err := compilePattern(r.Pattern)
		if err != nil {
			return nil, errors.WrapFailf(err, "compile route %s", r.Name)
		}
		compiled = append(compiled, compiledRoute{Route: r, pattern: p})
	}

	slices.SortStableFunc(compiled, func(a, b compiledRoute) int {
		return int(a.pattern.kind) - int(b.pattern.kind)
	})

	return &Router{
		routes: compiled,
		log:    log.With("router"),
	}, nil
}

func (r *Router) Match(method, path string) (Route, Params, bool) {
	for _, route := range r.routes {
		if route.Method != method {
			continue
		}
		if params, ok := route.pattern.match(path); ok {
			return route.Route, params, true
		}
	}
	return Route{}, nil, false
}

// Dispatch answers OPTIONS preflights for any path, runs the matching
// handler, or returns 404. A panicking handler yields a 500.
func (r *Router) Dispatch(req *wire.Request) (resp *wire.Response) {
	if req.Method == http.MethodOptions {
		return wire.Empty(http.StatusOK)
	}

	route, params, ok := r.Match(req.Method, req.Path)
	if !ok {
		return wire.JSON(http.StatusNotFound, map[string]string{"error": "Endpoint not found"})
	}

	defer func() {
		if p := recover(); p != nil {
			r.log.Error(errors.Errorf("handler %s panicked: %v", route.Name, p))
			resp = wire.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
	}()

	resp = route.Handler(req, params)
	if resp == nil {
		panic(fmt.Sprintf("handler %s returned no response", route.Name))
	}
	return resp
}

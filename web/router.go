package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jdp/draft_tracker/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", standingsPageHandler(ctrl, render))
	r.Get("/eliminations", eliminationsPageHandler(ctrl, render))
	r.Get("/timeline", timelinePageHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/standings", standingsJSONHandler(ctrl, render))
		r.Get("/eliminations", eliminationsJSONHandler(ctrl, render))
		r.Get("/timeline", timelineJSONHandler(ctrl, render))
		r.Post("/whatif", whatIfHandler(ctrl, render))

		// Triggering a refresh can take a while when the stats site is slow.
		r.With(middleware.Timeout(2 * time.Minute)).Post("/update", forceRefreshHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("dt", map[string]string{"admin": "pa55word"})) // TODO: read from the environment instead
		r.Use(middleware.Timeout(2 * time.Minute))

		r.Post("/schedule", reloadScheduleHandler(ctrl, render))
	})

	return r
}

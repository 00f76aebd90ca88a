package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jdp/draft_tracker/controller"
	"github.com/jdp/draft_tracker/model"
	"github.com/unrolled/render"
)

func standingsPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := ctrl.GetSnapshot(r.Context())
		if err != nil {
			renderSnapshotError(w, render, err)
			return
		}

		eliminated := make(map[string]bool)
		if report, err := ctrl.EliminationReport(r.Context()); err == nil {
			for _, e := range report {
				eliminated[e.Participant] = e.Eliminated
			}
		}

		now := time.Now()
		// Games that could not be loaded are simply left off the page.
		today, _ := ctrl.GamesOn(r.Context(), now)
		yesterday, _ := ctrl.ResultsOn(r.Context(), now.AddDate(0, 0, -1))

		data := map[string]any{
			"snapshot":   snapshot,
			"eliminated": eliminated,
			"today":      today,
			"yesterday":  yesterday,
		}
		render.HTML(w, http.StatusOK, "standings", data)
	}
}

func eliminationsPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.EliminationReport(r.Context())
		if err != nil {
			renderSnapshotError(w, render, err)
			return
		}

		render.HTML(w, http.StatusOK, "eliminations", report)
	}
}

func timelinePageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dates, timeline, err := loadTimeline(r, ctrl)
		if err != nil {
			renderSnapshotError(w, render, err)
			return
		}

		data := map[string]any{
			"dates":    dates,
			"timeline": timeline,
		}
		render.HTML(w, http.StatusOK, "timeline", data)
	}
}

func standingsJSONHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := ctrl.GetSnapshot(r.Context())
		if err != nil {
			renderJSONError(w, render, err)
			return
		}

		render.JSON(w, http.StatusOK, snapshot)
	}
}

func eliminationsJSONHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.EliminationReport(r.Context())
		if err != nil {
			renderJSONError(w, render, err)
			return
		}

		render.JSON(w, http.StatusOK, report)
	}
}

func timelineJSONHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dates, timeline, err := loadTimeline(r, ctrl)
		if err != nil {
			renderJSONError(w, render, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"dates":    dates,
			"timeline": timeline,
		})
	}
}

// whatIfHandler computes standings for an alternate draft without touching
// the saved one. The body is a JSON object mapping participant names to the
// teams they would own.
func whatIfHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var assignments map[string][]string
		if err := json.NewDecoder(r.Body).Decode(&assignments); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("error parsing draft assignments: %v", err),
			})
			return
		}

		snapshot, err := ctrl.Recalculate(r.Context(), assignments)
		if err != nil {
			if errors.Is(err, controller.ErrNoData) {
				renderJSONError(w, render, err)
			} else {
				render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, snapshot)
	}
}

func forceRefreshHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.Refresh(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error refreshing standings: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "standings refresh completed successfully")
	}
}

func reloadScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.ReloadSchedule(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error reloading schedule: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "schedule reload completed successfully")
	}
}

func loadTimeline(r *http.Request, ctrl controller.C) ([]time.Time, model.Timeline, error) {
	dates, err := ctrl.DateAxis(r.Context(), time.Now())
	if err != nil {
		return nil, nil, err
	}

	timeline, err := ctrl.Timeline(r.Context(), dates)
	if err != nil {
		return nil, nil, err
	}
	return dates, timeline, nil
}

// renderSnapshotError turns ErrNoData into the friendly "check back later"
// page instead of a generic 500.
func renderSnapshotError(w http.ResponseWriter, render *render.Render, err error) {
	if errors.Is(err, controller.ErrNoData) {
		render.HTML(w, http.StatusServiceUnavailable, "unavailable", nil)
		return
	}
	render.HTML(w, http.StatusInternalServerError, "500", err.Error())
}

func renderJSONError(w http.ResponseWriter, render *render.Render, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, controller.ErrNoData) {
		status = http.StatusServiceUnavailable
	}
	render.JSON(w, status, map[string]string{"error": err.Error()})
}

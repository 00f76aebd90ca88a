package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

//go:embed nbadata
var nbadata embed.FS

// FakeNBAStatsServer serves canned copies of the three stats API feeds the
// tracker depends on. Set FailuresBeforeSuccess to exercise the client's
// retry behavior.
type FakeNBAStatsServer struct {
	s *httptest.Server

	// FailuresBeforeSuccess makes each endpoint return a 500 this many times
	// before serving normally.
	FailuresBeforeSuccess int32
	failures              atomic.Int32

	statsRequests    atomic.Int32
	scheduleRequests atomic.Int32
}

func NewFakeNBAStatsServer() *FakeNBAStatsServer {
	f := &FakeNBAStatsServer{}

	r := chi.NewRouter()
	r.Route("/stats", func(r chi.Router) {
		r.Get("/leaguedashteamstats", f.teamStatsHandler)
		r.Get("/scheduleleaguev2", f.scheduleHandler)
		r.Get("/leaguegamelog", f.gameLogHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeNBAStatsServer) Close() {
	f.s.Close()
}

func (f *FakeNBAStatsServer) URL() string {
	return f.s.URL
}

// StatsRequests reports how many times the team stats feed was hit,
// including failed attempts.
func (f *FakeNBAStatsServer) StatsRequests() int {
	return int(f.statsRequests.Load())
}

// ScheduleRequests reports how many times the schedule feed was hit.
func (f *FakeNBAStatsServer) ScheduleRequests() int {
	return int(f.scheduleRequests.Load())
}

func (f *FakeNBAStatsServer) teamStatsHandler(w http.ResponseWriter, r *http.Request) {
	f.statsRequests.Add(1)
	if f.shouldFail() {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	serveFile(w, "team_stats.json")
}

func (f *FakeNBAStatsServer) scheduleHandler(w http.ResponseWriter, r *http.Request) {
	f.scheduleRequests.Add(1)
	if f.shouldFail() {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	serveFile(w, "schedule.json")
}

func (f *FakeNBAStatsServer) gameLogHandler(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail() {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	serveFile(w, "game_log.json")
}

func (f *FakeNBAStatsServer) shouldFail() bool {
	return f.failures.Add(1) <= f.FailuresBeforeSuccess
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := nbadata.ReadFile(fmt.Sprintf("nbadata/%s", name))
	if err != nil {
		log.Printf("error reading nbadata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jdp/draft_tracker/controller"
	"github.com/jdp/draft_tracker/db"
	"github.com/jdp/draft_tracker/model"
	"github.com/jdp/draft_tracker/platforms/nbastats"
	"github.com/jdp/draft_tracker/web"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	season := os.Getenv("SEASON")
	if season == "" {
		season = "2025-26"
	}

	clock := clock.New()

	// Prefer postgres when a connection string is configured, otherwise fall
	// back to a plain JSON file store so the tracker can run anywhere.
	var store db.Store
	if connString := os.Getenv("POSTGRES_CONN_STR"); connString != "" {
		store, err = db.New(context.Background(), connString, clock)
		if err != nil {
			log.Fatalf("cannot connect to DB: %v", err)
		}
	} else {
		cacheDir := os.Getenv("CACHE_DIR")
		if cacheDir == "" {
			cacheDir = "data"
		}
		store, err = db.NewFileStore(cacheDir)
		if err != nil {
			log.Fatalf("cannot create file store: %v", err)
		}
	}
	defer store.Close()

	roster, err := loadRoster(os.Getenv("ROSTER_FILE"))
	if err != nil {
		log.Fatalf("error loading roster: %v", err)
	}

	provider, err := nbastats.New(season)
	if err != nil {
		log.Fatalf("error creating stats client: %v", err)
	}

	ctrl, err := controller.New(clock, provider, store, roster)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	// Warm the snapshot before serving. Failures are not fatal, the last
	// saved snapshot (if any) still serves until the next scheduled refresh.
	startupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := ctrl.Refresh(startupCtx); err != nil {
		log.Printf("initial refresh failed: %v", err)
	}
	cancel()

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that refreshes the standings every morning.
	wg.Add(1)
	go ctrl.RunPeriodicRefresh(shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

// loadRoster reads the draft assignments from a JSON file mapping participant
// names to lists of team names.
func loadRoster(path string) (model.Roster, error) {
	if path == "" {
		path = "roster.json"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var assignments map[string][]string
	if err := json.Unmarshal(data, &assignments); err != nil {
		return nil, err
	}

	return model.NewRoster(assignments)
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}

package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/jdp/draft_tracker/model"
	"github.com/sethvargo/go-retry"
)

const StatsURL = "https://stats.nba.com"

const scheduleDateFormat = "01/02/2006 15:04:05"

// Client fetches feeds from the NBA stats API and normalizes them into
// canonical records. Team names that cannot be resolved against the 30-team
// universe are dropped from the result and reported as warnings, never as a
// fetch failure.
type Client interface {
	// LoadTeamStats returns the normalized season-to-date record for every
	// team that resolved, plus per-team warnings for the ones that did not.
	LoadTeamStats(ctx context.Context) ([]model.TeamStats, []string, error)
	// LoadSchedule returns the full season fixture list.
	LoadSchedule(ctx context.Context) (*model.Schedule, error)
	// LoadGameLog returns every finished game this season, one entry per
	// team per game, in chronological order as the provider reports it.
	LoadGameLog(ctx context.Context) ([]model.GameResult, error)
}

type client struct {
	url        string
	season     string
	httpClient *http.Client
}

func New(season string) (Client, error) {
	if season == "" {
		return nil, fmt.Errorf("season is required, e.g. 2025-26")
	}
	c := &client{
		url:    StatsURL,
		season: season,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		season:     "2025-26",
		httpClient: http.DefaultClient,
	}
}

func (c *client) LoadTeamStats(ctx context.Context) ([]model.TeamStats, []string, error) {
	params := url.Values{
		"LeagueID":    {"00"},
		"Season":      {c.season},
		"SeasonType":  {"Regular Season"},
		"MeasureType": {"Base"},
		"PerMode":     {"PerGame"},
	}

	var parsed statsResponse
	if err := c.get(ctx, "/stats/leaguedashteamstats", params, &parsed); err != nil {
		return nil, nil, err
	}
	if len(parsed.ResultSets) == 0 {
		return nil, nil, fmt.Errorf("team stats response had no result sets")
	}

	var stats []model.TeamStats
	var warnings []string
	for _, r := range parsed.ResultSets[0].rows() {
		name := r.str("TEAM_NAME")
		team := model.ResolveTeam(name)
		if team == nil {
			warnings = append(warnings, fmt.Sprintf("unresolved team name %q in stats feed", name))
			continue
		}
		stats = append(stats, toTeamStats(r, team))
	}

	return stats, warnings, nil
}

func (c *client) LoadSchedule(ctx context.Context) (*model.Schedule, error) {
	params := url.Values{
		"LeagueID": {"00"},
		"Season":   {c.season},
	}

	var parsed scheduleResponse
	if err := c.get(ctx, "/stats/scheduleleaguev2", params, &parsed); err != nil {
		return nil, err
	}

	sched := &model.Schedule{Populated: true}
	for _, gd := range parsed.LeagueSchedule.GameDates {
		for _, g := range gd.Games {
			home := model.ResolveTeam(g.HomeTeam.TeamName)
			away := model.ResolveTeam(g.AwayTeam.TeamName)
			if home == nil || away == nil {
				log.Printf("dropping fixture with unresolved teams: %q vs %q", g.HomeTeam.TeamName, g.AwayTeam.TeamName)
				continue
			}

			date, err := time.Parse(scheduleDateFormat, gd.GameDate)
			if err != nil {
				log.Printf("dropping fixture with bad date %q: %v", gd.GameDate, err)
				continue
			}

			sched.Fixtures = append(sched.Fixtures, model.Fixture{
				Date: date,
				Home: home.String(),
				Away: away.String(),
			})
		}
	}

	return sched, nil
}

func (c *client) LoadGameLog(ctx context.Context) ([]model.GameResult, error) {
	params := url.Values{
		"LeagueID":   {"00"},
		"Season":     {c.season},
		"SeasonType": {"Regular Season"},
		"Sorter":     {"DATE"},
		"Direction":  {"ASC"},
	}

	var parsed statsResponse
	if err := c.get(ctx, "/stats/leaguegamelog", params, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.ResultSets) == 0 {
		return nil, fmt.Errorf("game log response had no result sets")
	}

	var results []model.GameResult
	for _, r := range parsed.ResultSets[0].rows() {
		name := r.str("TEAM_NAME")
		team := model.ResolveTeam(name)
		if team == nil {
			log.Printf("dropping game log row with unresolved team %q", name)
			continue
		}

		res, err := toGameResult(r, team)
		if err != nil {
			log.Printf("dropping game log row for %s: %v", team, err)
			continue
		}
		results = append(results, res)
	}

	return results, nil
}

// get runs a GET with the provider's required headers and a bounded retry:
// up to 3 attempts with increasing backoff. The stats API throttles browsers
// it does not recognize, hence the full header set.
func (c *client) get(ctx context.Context, path string, params url.Values, v any) error {
	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(2*time.Second))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s?%s", c.url, path, params.Encode()), nil)
		if err != nil {
			return fmt.Errorf("error creating http request: %w", err)
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Referer", "https://www.nba.com/")
		req.Header.Set("Origin", "https://www.nba.com")
		req.Header.Set("x-nba-stats-origin", "stats")
		req.Header.Set("x-nba-stats-token", "true")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("error sending http request: %w", err))
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
				return retry.RetryableError(err)
			}
			return err
		}

		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("error parsing response: %w", err)
		}
		return nil
	})
}

type scheduleResponse struct {
	LeagueSchedule struct {
		GameDates []struct {
			GameDate string `json:"gameDate"`
			Games    []struct {
				HomeTeam scheduleTeam `json:"homeTeam"`
				AwayTeam scheduleTeam `json:"awayTeam"`
			} `json:"games"`
		} `json:"gameDates"`
	} `json:"leagueSchedule"`
}

type scheduleTeam struct {
	TeamName string `json:"teamName"`
}

// README: Bench cases; HTTP contract checks, error mapping, parallel independence and throughput.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  Status
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 2 * time.Minute},
	}
}

// RunAll runs every case in order, printing one line per case, and tallies the outcomes.
func (r *Runner) RunAll(ctx context.Context) Summary {
	var sum Summary
	for _, tc := range r.cases() {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		sum.Add(res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency.Round(time.Millisecond))
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return sum
}

var flightBody = map[string]any{
	"origin":      "DEL",
	"destination": "SIN",
	"depart_date": "2026-03-10",
	"return_date": "2026-03-14",
	"adults":      2,
	"cabin":       "economy",
	"max_results": 2,
}

var itineraryBody = map[string]any{
	"destination": "Singapore",
	"start_date":  "2026-03-10",
	"end_date":    "2026-03-14",
	"pace":        "fast",
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		httpCaseMethod("Health: GET /health", http.MethodGet, base+"/health", nil, []int{200}, nil),
		httpCaseMethod("Tools: list", http.MethodGet, base+"/api/tools", nil, []int{200}, []int{401}),

		// Validation happens before any upstream call, so these never need credentials.
		httpCase("Validation: flight missing origin", base+"/api/tools/flight_search",
			map[string]any{"destination": "SIN", "depart_date": "2026-03-10"}, []int{400}, nil),
		httpCase("Validation: flight adults=10", base+"/api/tools/flight_search",
			map[string]any{"origin": "DEL", "destination": "SIN", "depart_date": "2026-03-10", "adults": 10}, []int{400}, nil),
		httpCase("Validation: flight max_results=11", base+"/api/tools/flight_search",
			map[string]any{"origin": "DEL", "destination": "SIN", "depart_date": "2026-03-10", "max_results": 11}, []int{400}, nil),
		httpCase("Validation: itinerary missing dates", base+"/api/tools/travel_itinerary",
			map[string]any{"destination": "Singapore"}, []int{400}, nil),
		httpCase("Routing: unknown tool -> 404", base+"/api/tools/hotel_search", map[string]any{}, []int{404}, nil),

		r.liveCase(TestCase{
			Name:  "Flight: DEL->SIN contract",
			Focus: "query text + option cap",
			Run: func(ctx context.Context, r *Runner) Result {
				return flightContract(ctx, r, base+"/api/tools/flight_search")
			},
		}),
		r.liveCase(httpCase("Itinerary: fast pace", base+"/api/tools/travel_itinerary", itineraryBody, []int{200}, []int{503})),
		r.liveCase(httpCase("Plan: origin triggers flight step", base+"/api/plan",
			map[string]any{"destination": "SIN", "start_date": "2026-03-10", "end_date": "2026-03-14", "origin": "DEL"}, []int{200}, []int{503})),
		r.liveCase(TestCase{
			Name:  "Concurrency: parallel flight searches independent",
			Focus: "identical inputs give identical queries",
			Run: func(ctx context.Context, r *Runner) Result {
				return parallelFlights(ctx, r, base+"/api/tools/flight_search")
			},
		}),

		{
			Name:  "Perf: tool listing throughput",
			Focus: "gateway overhead only",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/tools")
			},
		},
	}
}

// liveCase skips tc unless -live is set; live cases spend provider quota.
func (r *Runner) liveCase(tc TestCase) TestCase {
	if r.cfg.Live {
		return tc
	}
	return TestCase{
		Name:  tc.Name,
		Focus: tc.Focus,
		Run: func(ctx context.Context, r *Runner) Result {
			return Result{Status: StatusSkip, Note: "live=false"}
		},
	}
}

func (r *Runner) newRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.Token)
	}
	return req, nil
}

func httpCase(name, url string, body any, okStatuses, pendingStatuses []int) TestCase {
	return httpCaseMethod(name, http.MethodPost, url, body, okStatuses, pendingStatuses)
}

func httpCaseMethod(name, method, url string, body any, okStatuses, pendingStatuses []int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			req, err := r.newRequest(ctx, method, url, body)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			latency := time.Since(start)

			if contains(okStatuses, resp.StatusCode) {
				return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			if contains(pendingStatuses, resp.StatusCode) {
				return Result{Status: StatusPending, Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

type flightResponse struct {
	Query   string `json:"query"`
	Options []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"options"`
	FlightContextMarkdown string `json:"flight_context_markdown"`
}

func callFlight(ctx context.Context, r *Runner, url string) (flightResponse, int, error) {
	var out flightResponse
	req, err := r.newRequest(ctx, http.MethodPost, url, flightBody)
	if err != nil {
		return out, 0, err
	}
	resp, err := r.httpc.Do(req)
	if err != nil {
		return out, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return out, resp.StatusCode, nil
	}
	return out, resp.StatusCode, json.NewDecoder(resp.Body).Decode(&out)
}

const wantFlightQuery = "flights DEL to SIN round trip 2026-03-10 to 2026-03-14 2 adults economy prices"

func flightContract(ctx context.Context, r *Runner, url string) Result {
	start := time.Now()
	res, status, err := callFlight(ctx, r, url)
	latency := time.Since(start)
	switch {
	case err != nil:
		return Result{Status: StatusFail, Latency: latency, Note: err.Error()}
	case status == http.StatusServiceUnavailable:
		return Result{Status: StatusPending, Latency: latency, Note: "gateway missing TAVILY_API_KEY"}
	case status != http.StatusOK:
		return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
	case res.Query != wantFlightQuery:
		return Result{Status: StatusFail, Latency: latency, Note: "query=" + res.Query}
	case len(res.Options) > 2:
		return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("options=%d > max_results", len(res.Options))}
	case !strings.HasPrefix(res.FlightContextMarkdown, "**Flight shopping summary (web results):**"):
		return Result{Status: StatusFail, Latency: latency, Note: "markdown heading missing"}
	}
	return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("options=%d", len(res.Options))}
}

func parallelFlights(ctx context.Context, r *Runner, url string) Result {
	wg := sync.WaitGroup{}
	mu := sync.Mutex{}
	queries := map[string]int{}
	failures := 0
	pend := 0

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, status, err := callFlight(ctx, r, url)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				failures++
			case status == http.StatusServiceUnavailable:
				pend++
			case status != http.StatusOK:
				failures++
			default:
				queries[res.Query]++
			}
		}()
	}
	wg.Wait()

	if pend == r.cfg.Concurrency {
		return Result{Status: StatusPending, Note: "gateway missing TAVILY_API_KEY"}
	}
	if failures > 0 || len(queries) != 1 || queries[wantFlightQuery] == 0 {
		return Result{Status: StatusFail, Note: fmt.Sprintf("failures=%d distinct_queries=%d", failures, len(queries))}
	}
	return Result{Status: StatusPass, Note: fmt.Sprintf("calls=%d", r.cfg.Concurrency)}
}

func perfLoad(ctx context.Context, r *Runner, url string) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, err := r.newRequest(ctx, http.MethodGet, url, nil)
				if err != nil {
					return
				}
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

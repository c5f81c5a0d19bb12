// README: Smoke/bench runner for a running gateway; checks tool contracts, error mapping and parallel independence.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"tripsmith/internal/config"
)

type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusPending Status = "PENDING"
	StatusSkip    Status = "SKIP"
)

// Summary counts case outcomes. PENDING means the gateway answered but lacks a
// provider key, so the case could not prove anything.
type Summary struct {
	Pass, Fail, Pending, Skip int
	Failed                    []string
}

func (s *Summary) Add(r Result) {
	switch r.Status {
	case StatusPass:
		s.Pass++
	case StatusFail:
		s.Fail++
		s.Failed = append(s.Failed, r.Name)
	case StatusPending:
		s.Pending++
	case StatusSkip:
		s.Skip++
	}
}

// ExitCode is 1 on any failure, or on pending cases when strict.
func (s Summary) ExitCode(strict bool) int {
	if s.Fail > 0 || (strict && s.Pending > 0) {
		return 1
	}
	return 0
}

func (s Summary) String() string {
	line := fmt.Sprintf("PASS=%d FAIL=%d PENDING=%d SKIP=%d", s.Pass, s.Fail, s.Pending, s.Skip)
	if len(s.Failed) > 0 {
		line += "\nfailed: " + strings.Join(s.Failed, "; ")
	}
	return line
}

func main() {
	src, err := config.DefaultSource()
	if err != nil {
		log.Fatal(err)
	}
	cfg := loadConfig(src, flag.CommandLine, os.Args[1:])

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	sum := NewRunner(cfg).RunAll(ctx)
	fmt.Println("\n== Summary ==")
	fmt.Println(sum)
	os.Exit(sum.ExitCode(cfg.Strict))
}

type Config struct {
	BaseURL     string
	Token       string
	Live        bool
	Strict      bool
	Timeout     time.Duration
	Concurrency int
	Duration    time.Duration
}

// loadConfig reads flags whose defaults come from src, the same layered
// environment and settings file the gateway reads.
func loadConfig(src config.Source, fs *flag.FlagSet, args []string) Config {
	env := benchSettings{src}
	var cfg Config
	fs.StringVar(&cfg.BaseURL, "base-url", env.str("TRIPSMITH_BENCH_BASE_URL", "http://localhost:8080"), "Gateway base URL")
	fs.StringVar(&cfg.Token, "token", env.str("TRIPSMITH_TOOLS_TOKEN", ""), "Bearer token for /api routes")
	fs.BoolVar(&cfg.Live, "live", env.boolean("TRIPSMITH_BENCH_LIVE", false), "Run cases that call Tavily and the completion provider")
	fs.BoolVar(&cfg.Strict, "strict", env.boolean("TRIPSMITH_BENCH_STRICT", false), "Fail on pending cases")
	fs.DurationVar(&cfg.Timeout, "timeout", env.duration("TRIPSMITH_BENCH_TIMEOUT", 5*time.Minute), "Total timeout")
	fs.IntVar(&cfg.Concurrency, "concurrency", env.positive("TRIPSMITH_BENCH_CONCURRENCY", 5), "Parallel calls for concurrency/perf cases")
	fs.DurationVar(&cfg.Duration, "duration", env.duration("TRIPSMITH_BENCH_DURATION", 10*time.Second), "Duration for perf cases")
	_ = fs.Parse(args)
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

// benchSettings falls back to the default on blank or unparsable values.
type benchSettings struct {
	src config.Source
}

func (b benchSettings) str(key, def string) string {
	if v, ok := b.src.Lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (b benchSettings) boolean(key string, def bool) bool {
	v, err := strconv.ParseBool(b.str(key, ""))
	if err != nil {
		return def
	}
	return v
}

func (b benchSettings) positive(key string, def int) int {
	n, err := strconv.Atoi(b.str(key, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (b benchSettings) duration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(b.str(key, ""))
	if err != nil {
		return def
	}
	return d
}

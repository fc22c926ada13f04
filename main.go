package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"ivac-core/internal/config"
	"ivac-core/internal/container"
	"ivac-core/internal/domain"
	"ivac-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if len(os.Args) < 2 {
		fmt.Println("Usage: ivac-core [report|stats|leaderboard] <year> <month> [branch]")
		os.Exit(1)
	}
	command := os.Args[1]

	c, err := container.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize container")
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Error("Failed to close container")
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	period, branch, err := parseScope(os.Args[2:])
	if err != nil {
		log.WithError(err).Fatal("Invalid arguments")
	}

	switch command {
	case "report":
		bundle, err := c.GetReportService().Generate(ctx, period, branch)
		if err != nil {
			log.WithError(err).Fatal("Failed to generate report")
		}
		printJSON(bundle)

	case "stats":
		stats, err := c.GetAnalyticsService().ComputeMemberStats(ctx, period, branch)
		if err != nil {
			log.WithError(err).Fatal("Failed to compute member stats")
		}
		printJSON(stats)

	case "leaderboard":
		stats, err := c.GetAnalyticsService().ComputeMemberStats(ctx, period, branch)
		if err != nil {
			log.WithError(err).Fatal("Failed to compute member stats")
		}
		printJSON(c.GetAnalyticsService().Leaderboard(stats))

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

// parseScope reads "<year> <month> [branch]". Both period parts are
// required; branch is optional and defaults to all branches.
func parseScope(args []string) (domain.Period, string, error) {
	if len(args) < 2 {
		return domain.Period{}, "", fmt.Errorf("expected <year> <month> [branch]")
	}

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return domain.Period{}, "", fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	month, err := strconv.Atoi(args[1])
	if err != nil || month < 1 || month > 12 {
		return domain.Period{}, "", fmt.Errorf("invalid month %q", args[1])
	}

	branch := ""
	if len(args) > 2 {
		branch = args[2]
	}

	return domain.MonthPeriod(year, time.Month(month)), branch, nil
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
}

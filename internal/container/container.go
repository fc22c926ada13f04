package container

import (
	"fmt"

	"ivac-core/internal/clock"
	"ivac-core/internal/config"
	"ivac-core/internal/repository"
	"ivac-core/internal/scanner"
	"ivac-core/internal/service"
	"ivac-core/pkg/logger"
	"ivac-core/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	RedisClient *redis.Client
	Clock       clock.Clock
	Services    *service.Services
}

// New creates a new dependency injection container
func New(cfg *config.Config, log *logger.Logger) (*Container, error) {
	redisClient, err := redis.NewClient(cfg.RedisURL, cfg.Environment, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	log.Info("store client initialized successfully")

	clk := clock.NewSystem()
	activityLock := service.NewActivityLock()

	activityRepo := repository.NewActivityRepository(redisClient, log.Logger)
	memberRepo := repository.NewMemberRepository(redisClient, log.Logger)

	lockWindow := cfg.RegistrationLockWindow()

	activitySvc := service.NewActivityService(activityRepo, activityLock, cfg.Branches, log.Logger)
	registrationSvc := service.NewRegistrationService(activityRepo, memberRepo, activityLock, clk, lockWindow, log.Logger)
	attendanceSvc := service.NewAttendanceService(activityRepo, memberRepo, activityLock, clk, log.Logger)
	analyticsSvc := service.NewAnalyticsService(activityRepo, memberRepo, clk, lockWindow, log.Logger)
	reportSvc := service.NewReportService(activitySvc, analyticsSvc, memberRepo, log.Logger)

	services := &service.Services{
		Activity:     activitySvc,
		Registration: registrationSvc,
		Attendance:   attendanceSvc,
		Analytics:    analyticsSvc,
		Report:       reportSvc,
	}

	return &Container{
		Config:      cfg,
		Logger:      log,
		RedisClient: redisClient,
		Clock:       clk,
		Services:    services,
	}, nil
}

// GetActivityService returns the activity service
func (c *Container) GetActivityService() service.ActivityService {
	return c.Services.Activity
}

// GetRegistrationService returns the registration service
func (c *Container) GetRegistrationService() service.RegistrationService {
	return c.Services.Registration
}

// GetAttendanceService returns the attendance service
func (c *Container) GetAttendanceService() service.AttendanceService {
	return c.Services.Attendance
}

// GetAnalyticsService returns the analytics service
func (c *Container) GetAnalyticsService() service.AnalyticsService {
	return c.Services.Analytics
}

// GetReportService returns the report service
func (c *Container) GetReportService() service.ReportService {
	return c.Services.Report
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// NewScanner builds a scan loop over the caller's frame source using the
// configured poll cadence.
func (c *Container) NewScanner(source scanner.FrameSource, decoder scanner.Decoder) *scanner.Scanner {
	return scanner.New(source, decoder, c.Config.ScanPollInterval, c.Logger.Logger)
}

// Close releases the container's external connections.
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}

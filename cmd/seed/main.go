package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ivac-core/internal/domain"
	"ivac-core/internal/repository"
	"ivac-core/pkg/redis"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Fatal("REDIS_URL environment variable is not set")
	}
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go [seed|cleanup]")
		os.Exit(1)
	}
	command := os.Args[1]

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	client, err := redis.NewClient(redisURL, environment, zapLogger)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	switch command {
	case "seed":
		if err := seedData(ctx, client, zapLogger); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("Data seeded successfully")

	case "cleanup":
		if err := cleanupData(ctx, client, zapLogger); err != nil {
			log.Fatalf("Failed to clean up data: %v", err)
		}
		fmt.Println("Data cleaned up successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

// seedData loads a small demo roster and one activity per branch.
func seedData(ctx context.Context, client *redis.Client, zapLogger *zap.Logger) error {
	members := repository.NewMemberRepository(client, zapLogger)
	activities := repository.NewActivityRepository(client, zapLogger)

	demoMembers := []domain.Member{
		{ID: "m-somsak", Code: "IV-001", Name: "Somsak", Branch: "central", Role: domain.RoleMember, Gender: domain.GenderMale, JoinedAt: mustDate("2022-01-15")},
		{ID: "m-wilai", Code: "IV-002", Name: "Wilai", Branch: "central", Role: domain.RoleStaff, Gender: domain.GenderFemale, JoinedAt: mustDate("2021-06-01")},
		{ID: "m-arthit", Code: "IV-003", Name: "Arthit", Branch: "north", Role: domain.RoleMember, Gender: domain.GenderMale, JoinedAt: mustDate("2023-09-10")},
	}
	for i := range demoMembers {
		if err := members.Save(ctx, &demoMembers[i]); err != nil {
			return fmt.Errorf("save member %s: %w", demoMembers[i].ID, err)
		}
	}

	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	demoActivities := []domain.Activity{
		{
			ID: "act-orientation", Name: "New Member Orientation", Branch: "central",
			Date: nextWeek, StartTime: "09:00", EndTime: "12:00", Points: 10,
			Participants: []domain.Participant{}, Attendees: []domain.Attendee{},
		},
		{
			ID: "act-cleanup", Name: "Riverside Cleanup", Branch: "north",
			Date: nextWeek, StartTime: "08:00", EndTime: "11:00", Points: 15,
			Participants: []domain.Participant{}, Attendees: []domain.Attendee{},
		},
	}
	for i := range demoActivities {
		if err := activities.Save(ctx, &demoActivities[i]); err != nil {
			return fmt.Errorf("save activity %s: %w", demoActivities[i].ID, err)
		}
	}

	return nil
}

// cleanupData removes everything the seed command created.
func cleanupData(ctx context.Context, client *redis.Client, zapLogger *zap.Logger) error {
	members := repository.NewMemberRepository(client, zapLogger)
	activities := repository.NewActivityRepository(client, zapLogger)

	for _, id := range []string{"act-orientation", "act-cleanup"} {
		if err := activities.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete activity %s: %w", id, err)
		}
	}

	for _, id := range []string{"m-somsak", "m-wilai", "m-arthit"} {
		if err := members.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete member %s: %w", id, err)
		}
	}

	return nil
}

func mustDate(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

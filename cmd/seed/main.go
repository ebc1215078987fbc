package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"scholarhub/internal/config"
	"scholarhub/internal/db"
	"scholarhub/internal/model"
	"scholarhub/internal/repository"
	"scholarhub/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
	cfg := config.Load()

	uri, err := cfg.MongoConnectionString()
	if err != nil {
		log.Fatalf("Failed to resolve database URI: %v", err)
	}
	mgr := db.NewManager(db.Dial(db.Options{
		URI:            uri,
		ConnectTimeout: cfg.MongoConnectTimeout,
		SocketTimeout:  cfg.MongoSocketTimeout,
		MaxPoolSize:    cfg.MongoMaxPoolSize,
	}), nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := mgr.Ensure(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer mgr.Close(context.Background())
	log.Println("Connected to database")

	scholarshipRepo := repository.NewScholarshipRepository(mgr)
	seeded, err := seedScholarships(ctx, scholarshipRepo, service.FallbackScholarships())
	if err != nil {
		log.Fatalf("Failed to seed scholarships: %v", err)
	}
	log.Printf("Scholarships inserted: %d", seeded)

	adminEmail := strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL"))
	if adminEmail == "" {
		log.Println("SEED_ADMIN_EMAIL not set; skipping admin user")
		return
	}
	users := service.NewUserService(repository.NewUserRepository(mgr), nil)
	if err := seedAdmin(ctx, users, adminEmail); err != nil {
		log.Fatalf("Failed to seed admin %s: %v", adminEmail, err)
	}
	log.Printf("Admin user ready: %s", adminEmail)
	log.Println("Seed completed successfully!")
}

// seedScholarships inserts items only into an empty collection, so reruns
// never duplicate the catalogue.
func seedScholarships(ctx context.Context, repo repository.ScholarshipRepository, items []model.Scholarship) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing scholarships: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Collection already holds %d scholarships; nothing to insert", len(existing))
		return 0, nil
	}

	seeded := 0
	for i := range items {
		item := items[i]
		if _, err := repo.Create(ctx, &item); err != nil {
			return seeded, fmt.Errorf("error creating scholarship %q: %w", item.ScholarshipName, err)
		}
		seeded++
	}
	return seeded, nil
}

// seedAdmin creates the user when absent and promotes it to admin.
func seedAdmin(ctx context.Context, users service.UserService, email string) error {
	if _, err := users.CreateUser(ctx, "Administrator", email); err != nil {
		return err
	}
	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s missing after create", email)
	}
	if user.Role == model.RoleAdmin {
		return nil
	}
	_, err = users.UpdateRole(ctx, user.ID.Hex(), string(model.RoleAdmin))
	return err
}

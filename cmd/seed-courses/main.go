package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/database"
	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/internal/seed"
	"github.com/campusconnect/backend/internal/service"
)

func main() {
	var file string
	var dryRun bool
	flag.StringVar(&file, "file", "", "JSON file with the course catalog (default: built-in catalog)")
	flag.BoolVar(&dryRun, "dry-run", false, "Validate the catalog without writing it")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	courses := seed.DefaultCourses()
	if file != "" {
		loaded, err := seed.LoadCourses(file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("Failed to load catalog")
		}
		courses = loaded
	}
	if err := seed.Validate(courses); err != nil {
		log.Fatal().Err(err).Msg("Catalog is invalid")
	}

	fmt.Printf("=== Seeding %d Courses ===\n", len(courses))
	printCatalog(courses)
	if dryRun {
		fmt.Println("Dry run: nothing written.")
		return
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	catalogService := service.NewCatalogService(
		database.NewTransactor(pool, log),
		repository.NewCourseRepository(pool),
		log,
	)
	if err := catalogService.Seed(ctx, courses); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	fmt.Println("Seeding completed.")
}

func printCatalog(courses []model.Course) {
	for _, c := range courses {
		prereq := "-"
		if c.HasPrereq() {
			prereq = *c.PrereqID
		}
		fmt.Printf("  %-12s %-4s %3d  seats %2d/%-2d  prereq %-12s %s\n",
			c.ID, c.Dept, c.Number, c.SeatsUsed, c.MaxSeats, prereq, c.Title)
	}
}

package main

import (
	"context"
	"log"
	"time"

	"github.com/tungtase04539/ai-news/internal/articles"
	"github.com/tungtase04539/ai-news/internal/config"
	"github.com/tungtase04539/ai-news/internal/courses"
	"github.com/tungtase04539/ai-news/internal/supabase"
	"github.com/tungtase04539/ai-news/internal/tools"
)

// Pushes the built-in fallback datasets into a configured Supabase project
// so a fresh deployment starts with content. Safe to run twice: records
// already present, matched by title or name, are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.IsSupabaseConfigured() {
		log.Fatal("seed requires SUPABASE_URL and SUPABASE_ANON_KEY")
	}

	client := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := seedCourses(ctx, courses.NewSupabaseRepository(client)); err != nil {
		log.Fatal(err)
	}
	if err := seedArticles(ctx, articles.NewSupabaseRepository(client)); err != nil {
		log.Fatal(err)
	}
	if err := seedTools(ctx, tools.NewSupabaseRepository(client)); err != nil {
		log.Fatal(err)
	}

	log.Println("seed complete")
}

func seedCourses(ctx context.Context, repo courses.Repository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[c.Title] = true
	}
	for _, c := range courses.Fallback {
		if seen[c.Title] {
			log.Printf("course exists, skipping: %s", c.Title)
			continue
		}
		if _, err := repo.Create(ctx, c); err != nil {
			return err
		}
		log.Printf("course created: %s", c.Title)
	}
	return nil
}

func seedArticles(ctx context.Context, repo articles.Repository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a.Title] = true
	}
	for _, a := range articles.Fallback {
		if seen[a.Title] {
			log.Printf("article exists, skipping: %s", a.Title)
			continue
		}
		if _, err := repo.Create(ctx, a); err != nil {
			return err
		}
		log.Printf("article created: %s", a.Title)
	}
	return nil
}

func seedTools(ctx context.Context, repo tools.Repository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t.Name] = true
	}
	for _, t := range tools.Fallback {
		if seen[t.Name] {
			log.Printf("tool exists, skipping: %s", t.Name)
			continue
		}
		if _, err := repo.Create(ctx, t); err != nil {
			return err
		}
		log.Printf("tool created: %s", t.Name)
	}
	return nil
}

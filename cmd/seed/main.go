package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"blogpress/internal/entity"
	"blogpress/internal/repo/persistent"
	"blogpress/internal/usecase"
	"blogpress/pkg/config"
	"blogpress/pkg/database"
	"blogpress/pkg/logger"
	"blogpress/pkg/session"
)

type seedPost struct {
	title     string
	content   string
	thumbnail string
	tags      []string
	published bool
}

var demoPosts = []seedPost{
	{
		title:     "Quarterly earnings season preview",
		content:   "What to watch for as the big names report their numbers this quarter.",
		thumbnail: "https://images.example.com/earnings.jpg",
		tags:      []string{"Business", "News"},
		published: true,
	},
	{
		title:     "Indie games worth your weekend",
		content:   "Five small-studio releases that punch well above their weight.",
		thumbnail: "https://images.example.com/indie.png",
		tags:      []string{"Gaming"},
		published: true,
	},
	{
		title:     "Building a home lab on a budget",
		content:   "Second-hand mini PCs make a surprisingly capable cluster.",
		thumbnail: "https://images.example.com/homelab.webp",
		tags:      []string{"Technology", "Gaming"},
		published: true,
	},
	{
		title:     "Sleep, screens and focus",
		content:   "Notes from a month of putting the phone away an hour before bed.",
		thumbnail: "https://images.example.com/sleep.jpeg",
		tags:      []string{"Health", "Technology"},
		published: true,
	},
	{
		title:     "Draft: conference roundup",
		content:   "Talks, hallway conversations and everything in between.",
		thumbnail: "https://images.example.com/conference.jpg",
		tags:      []string{"Technology", "News"},
		published: false,
	},
}

func main() {
	var (
		name     = flag.String("name", "Demo Admin", "demo admin name")
		email    = flag.String("email", "admin@example.com", "demo admin email")
		password = flag.String("password", "password123", "demo admin password")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	if err := database.Migrate(sqlDB); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	authUseCase := usecase.NewAuthUseCase(persistent.NewAdminRepository(db), session.NewCodec(cfg.SessionSecret), log)
	postUseCase := usecase.NewPostUseCase(persistent.NewPostRepository(db), log)

	if err := seed(context.Background(), authUseCase, postUseCase, *name, *email, *password, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seed(ctx context.Context, auth usecase.AuthUseCase, posts usecase.PostUseCase, name, email, password string, log *logger.Logger) error {
	admin, err := auth.Signup(ctx, name, email, password)
	switch {
	case errors.Is(err, entity.ErrDuplicateEmail):
		log.Info("Admin %s already exists, skipping", email)
		admin, _, err = auth.Login(ctx, email, password)
		if err != nil {
			return fmt.Errorf("existing admin %s: %w", email, err)
		}
	case err != nil:
		return err
	default:
		log.Info("Created admin: %s (%s)", admin.Name, admin.Email)
	}

	for _, p := range demoPosts {
		published := p.published
		post, err := posts.CreatePost(ctx, admin.ID, entity.PostInput{
			Title:       p.title,
			Content:     p.content,
			Thumbnail:   p.thumbnail,
			Tags:        p.tags,
			IsPublished: &published,
		})
		if err != nil {
			log.Error("Failed to create post %q: %v", p.title, err)
			continue
		}
		log.Info("Created post: %s", post.Title)
	}
	return nil
}

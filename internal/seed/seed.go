package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/pkg/auth"
)

// Options controls what CreateDefaultData inserts
type Options struct {
	AdminUsername string
	AdminPassword string
	SampleNews    bool
}

type sampleArticle struct {
	title, excerpt, content, author string
	featured                        bool
}

var sampleNews = []sampleArticle{
	{
		title:   "New Student Admissions for the 2024/2025 Academic Year",
		excerpt: "Enrollment is open for the 2024/2025 academic year with science, social studies and religious studies programs.",
		content: "The madrasah is pleased to announce that enrollment for the 2024/2025 academic year is now open.\n\n" +
			"Available programs:\n- Natural Sciences\n- Social Sciences\n- Religious Studies\n\n" +
			"Registration runs from 1 January to 31 March 2024. Contact the school office for more information.",
		author:   "Admissions Team",
		featured: true,
	},
	{
		title:    "Gold Medal at the National Science Olympiad",
		excerpt:  "Our students won gold in mathematics and silver in physics at the provincial science olympiad.",
		content:  "Students of the madrasah once again brought home medals from the provincial round of the National Science Olympiad, taking gold in mathematics and silver in physics.",
		author:   "Principal",
		featured: true,
	},
	{
		title:   "Arabic Calligraphy Workshop for Grade X",
		excerpt: "A three day calligraphy workshop introduced grade X students to classical Arabic scripts.",
		content: "All grade X students took part in a three day Arabic calligraphy workshop led by an experienced calligrapher, " +
			"covering the basics of the naskh and thuluth scripts.",
		author: "Extracurricular Coordinator",
	},
	{
		title:   "Opening of the New Computer Laboratory",
		excerpt: "The school opened a new computer laboratory to support digital learning and computer based exams.",
		content: "The new laboratory has forty workstations with a fiber internet connection and will be used for informatics lessons, " +
			"office software training, introductory programming and computer based tests.",
		author:   "Vice Principal",
		featured: true,
	},
}

// CreateDefaultData inserts the default administrator when the username is free and
// sample published news when no articles exist. Failures are collected, not fatal.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, hasher *auth.PasswordHasher, opts Options, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (admin user, sample news)...")
	var finalErr error

	if opts.AdminUsername != "" {
		if err := createAdmin(ctx, repos.UserRepository, hasher, opts, lgr); err != nil {
			lgr.Error().Err(err).Msg("Error creating default admin user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if opts.SampleNews {
		if err := createSampleNews(ctx, repos.NewsRepository, lgr); err != nil {
			lgr.Error().Err(err).Msg("Error creating sample news")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func createAdmin(ctx context.Context, users repositories.IUserRepository, hasher *auth.PasswordHasher, opts Options, lgr zerolog.Logger) error {
	_, err := users.GetByUsername(ctx, opts.AdminUsername)
	if err == nil {
		lgr.Debug().Str("username", opts.AdminUsername).Msg("Admin user already exists")
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hashed, err := hasher.Hash(opts.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{Username: opts.AdminUsername, Password: hashed, Role: models.DefaultRole}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	lgr.Info().Str("username", admin.Username).Msg("Default admin user created")
	return nil
}

func createSampleNews(ctx context.Context, news repositories.INewsRepository, lgr zerolog.Logger) error {
	count, err := news.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count news articles: %w", err)
	}
	if count > 0 {
		return nil
	}

	published := true
	var finalErr error
	for _, s := range sampleNews {
		title, excerpt, content, author, featured := s.title, s.excerpt, s.content, s.author, s.featured
		article := models.NewNewsArticle(&models.NewsArticleInput{
			Title:     &title,
			Excerpt:   &excerpt,
			Content:   &content,
			Author:    &author,
			Featured:  &featured,
			Published: &published,
		})
		if err := news.Create(ctx, article); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("count", len(sampleNews)).Msg("Sample news articles created")
	return finalErr
}

// Bulk-import a problem catalog into the database.
//
// The server seeds a starter sheet on first boot; this script is for
// loading a larger catalog, e.g. when standing up a new environment.
//
// Usage: go run scripts/import_problems.go catalog.yaml
package main

import (
	"basecase_backend/internal/config"
	"basecase_backend/internal/model"
	"basecase_backend/pkg/database"
	"basecase_backend/pkg/logger"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Sheets []struct {
		Slug        string `yaml:"slug"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Problems    []struct {
			Slug       string `yaml:"slug"`
			Title      string `yaml:"title"`
			Difficulty string `yaml:"difficulty"`
			Pattern    string `yaml:"pattern"`
			URL        string `yaml:"url"`
		} `yaml:"problems"`
	} `yaml:"sheets"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: go run scripts/import_problems.go <catalog.yaml>")
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read catalog: %v", err)
	}

	var catalog catalogFile
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		log.Fatalf("failed to parse catalog: %v", err)
	}

	imported := 0
	for _, s := range catalog.Sheets {
		sheet := model.Sheet{Slug: s.Slug}
		if err := db.Where("slug = ?", s.Slug).FirstOrCreate(&sheet, model.Sheet{
			Slug:        s.Slug,
			Name:        s.Name,
			Description: s.Description,
		}).Error; err != nil {
			log.Fatalf("failed to upsert sheet %s: %v", s.Slug, err)
		}

		for i, p := range s.Problems {
			problem := model.Problem{Slug: p.Slug}
			if err := db.Where("slug = ?", p.Slug).FirstOrCreate(&problem, model.Problem{
				Slug:       p.Slug,
				Title:      p.Title,
				Difficulty: model.Difficulty(p.Difficulty),
				Pattern:    p.Pattern,
				URL:        p.URL,
				Order:      i + 1,
				SheetID:    sheet.ID,
			}).Error; err != nil {
				log.Fatalf("failed to upsert problem %s: %v", p.Slug, err)
			}
			imported++
		}
	}

	log.Printf("catalog import done, %d problems across %d sheets", imported, len(catalog.Sheets))
}

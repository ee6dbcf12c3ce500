package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"agent-chat-be/internal/constant"
	"agent-chat-be/internal/model"
	"agent-chat-be/pkg/database"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type seedFile struct {
	Agents []seedAgent `yaml:"agents"`
}

type seedAgent struct {
	Id           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Speciality   string   `yaml:"speciality"`
	SystemPrompt string   `yaml:"system_prompt"`
	Greeting     string   `yaml:"greeting"`
	Suggestions  []string `yaml:"suggestions"`
	Color        string   `yaml:"color"`
	IconName     string   `yaml:"icon_name"`
	Active       *bool    `yaml:"active"`
	PremiumTier  int      `yaml:"premium_tier"`
	Category     string   `yaml:"category"`
}

// loadAgents parses the seed file and applies the same defaults the admin API
// uses for new agents.
func loadAgents(r io.Reader) ([]model.Agent, error) {
	var file seedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	agents := make([]model.Agent, 0, len(file.Agents))
	for i, a := range file.Agents {
		if a.Id == "" || a.Name == "" || a.SystemPrompt == "" {
			return nil, fmt.Errorf("agent #%d: id, name and system_prompt are required", i+1)
		}
		if a.IconName == "" {
			a.IconName = constant.DefaultAgentIcon
		}
		if !constant.IsKnownIcon(a.IconName) {
			return nil, fmt.Errorf("agent %q: unknown icon %q", a.Id, a.IconName)
		}
		if len(a.Suggestions) == 0 {
			a.Suggestions = constant.DefaultAgentSuggestions
		}
		if a.Color == "" {
			a.Color = constant.DefaultAgentColor
		}
		if a.Category == "" {
			a.Category = constant.DefaultAgentCategory
		}

		agents = append(agents, model.Agent{
			Id:           a.Id,
			Name:         a.Name,
			Description:  a.Description,
			Speciality:   a.Speciality,
			SystemPrompt: a.SystemPrompt,
			Greeting:     a.Greeting,
			Suggestions:  a.Suggestions,
			Color:        a.Color,
			IconName:     a.IconName,
			Active:       a.Active == nil || *a.Active,
			PremiumTier:  a.PremiumTier,
			Category:     a.Category,
		})
	}
	return agents, nil
}

func main() {
	path := flag.String("file", "cmd/seed/agents.yaml", "agent catalog to seed")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer f.Close()

	agents, err := loadAgents(f)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	log.Printf("Seeding %d agents...", len(agents))
	for _, a := range agents {
		var existing model.Agent
		err := db.Where("id = ?", a.Id).First(&existing).Error
		if err == nil {
			log.Printf("Agent '%s' already exists, skipping...", a.Id)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Error: lookup agent '%s': %v", a.Id, err)
		}

		if err := db.Create(&a).Error; err != nil {
			log.Fatalf("Error: create agent '%s': %v", a.Id, err)
		}
		log.Printf("Created agent '%s'", a.Id)
	}

	log.Println("✅ Agent catalog seeded")
}

package store

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultUserID identifies the seeded demo account that owns all records
// until a real auth layer exists.
const DefaultUserID = "default-user"

//go:embed seed.yaml
var seedData []byte

type seedFile struct {
	User struct {
		ID       string `yaml:"id"`
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
	} `yaml:"user"`
	Templates []struct {
		ID          string   `yaml:"id"`
		Name        string   `yaml:"name"`
		Type        string   `yaml:"type"`
		Subject     string   `yaml:"subject"`
		HTMLContent string   `yaml:"htmlContent"`
		TextContent string   `yaml:"textContent"`
		Variables   []string `yaml:"variables"`
		IsActive    bool     `yaml:"isActive"`
		UsageCount  int      `yaml:"usageCount"`
	} `yaml:"templates"`
}

// Seed loads the embedded demo user and starter templates. The templates
// keep their historical usage counters so the dashboard has data to show
// on first start.
func (m *Memory) Seed() error {
	var f seedFile
	if err := yaml.Unmarshal(seedData, &f); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[f.User.ID] = User{
		ID:       f.User.ID,
		Username: f.User.Username,
		Email:    f.User.Email,
		Name:     f.User.Name,
	}

	now := time.Now()
	for _, t := range f.Templates {
		text := t.TextContent
		tpl := Template{
			ID:          t.ID,
			Name:        t.Name,
			Type:        t.Type,
			Subject:     t.Subject,
			HTMLContent: t.HTMLContent,
			TextContent: &text,
			Variables:   t.Variables,
			IsActive:    t.IsActive,
			UsageCount:  t.UsageCount,
			CreatedAt:   now,
			UserID:      f.User.ID,
		}
		if tpl.Variables == nil {
			tpl.Variables = []string{}
		}
		m.templates[tpl.ID] = tpl
		m.templateOrder = append(m.templateOrder, tpl.ID)
	}

	return nil
}

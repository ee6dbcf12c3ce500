package dto

import "time"

type AgentListRequest struct {
	IncludeComingSoon bool `query:"include_coming_soon"`
	IncludeInactive   bool `query:"include_inactive"`
}

type AgentResponse struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Speciality  string    `json:"speciality"`
	Greeting    string    `json:"greeting"`
	Suggestions []string  `json:"suggestions"`
	Color       string    `json:"color"`
	IconName    string    `json:"icon_name"`
	Status      string    `json:"status"`
	PremiumTier int       `json:"premium_tier"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdminAgentResponse adds the fields only admins may see.
type AdminAgentResponse struct {
	AgentResponse
	SystemPrompt string `json:"system_prompt"`
	Active       bool   `json:"active"`
}

type CreateAgentRequest struct {
	Id           string   `json:"id" validate:"omitempty,max=64"`
	Name         string   `json:"name" validate:"required,max=120"`
	Description  string   `json:"description"`
	Speciality   string   `json:"speciality"`
	SystemPrompt string   `json:"system_prompt" validate:"required"`
	Greeting     string   `json:"greeting"`
	Suggestions  []string `json:"suggestions" validate:"omitempty,max=8,dive,required"`
	Color        string   `json:"color"`
	IconName     string   `json:"icon_name"`
	Active       *bool    `json:"active"`
	PremiumTier  int      `json:"premium_tier" validate:"gte=0"`
	Category     string   `json:"category"`
}

// UpdateAgentRequest is a partial update; nil fields are left untouched.
type UpdateAgentRequest struct {
	Id           string    `json:"-"`
	Name         *string   `json:"name" validate:"omitempty,min=1,max=120"`
	Description  *string   `json:"description"`
	Speciality   *string   `json:"speciality"`
	SystemPrompt *string   `json:"system_prompt" validate:"omitempty,min=1"`
	Greeting     *string   `json:"greeting"`
	Suggestions  *[]string `json:"suggestions"`
	Color        *string   `json:"color"`
	IconName     *string   `json:"icon_name"`
	Active       *bool     `json:"active"`
	PremiumTier  *int      `json:"premium_tier" validate:"omitempty,gte=0"`
	Category     *string   `json:"category"`
}

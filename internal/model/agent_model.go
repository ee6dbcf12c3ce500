package model

import (
	"time"

	"gorm.io/datatypes"
)

type Agent struct {
	Id           string                      `gorm:"type:text;primaryKey"`
	Name         string                      `gorm:"type:text;not null"`
	Description  string                      `gorm:"type:text"`
	Speciality   string                      `gorm:"type:text"`
	SystemPrompt string                      `gorm:"type:text;not null"`
	Greeting     string                      `gorm:"type:text"`
	Suggestions  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Color        string                      `gorm:"type:varchar(100)"`
	IconName     string                      `gorm:"type:varchar(50)"`
	Active       bool                        `gorm:"not null;default:true;index"`
	PremiumTier  int                         `gorm:"not null;default:0"`
	Category     string                      `gorm:"type:varchar(100);not null;default:'general'"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

func (Agent) TableName() string {
	return "agents"
}

package models

import (
	"errors"
	"slices"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrChartDescriptionRequired = errors.New("chart description is required")

// Chart is a dashboard visualisation and the roles allowed to see it.
type Chart struct {
	ID           uint                        `gorm:"primaryKey" json:"chart_id"`
	Description  string                      `gorm:"type:varchar(255);not null" json:"description"`
	AllowedRoles datatypes.JSONSlice[string] `json:"allowed_roles"`
}

// ChartDescriptor is what a client receives for a visible chart.
type ChartDescriptor struct {
	ChartID     uint   `json:"chart_id"`
	Description string `json:"description"`
}

func (c *Chart) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(c.Description) == "" {
		return ErrChartDescriptionRequired
	}
	if c.AllowedRoles == nil {
		c.AllowedRoles = datatypes.JSONSlice[string]{}
	}
	return nil
}

// VisibleTo reports whether role is a member of the allowed-role set.
func (c *Chart) VisibleTo(role string) bool {
	return slices.Contains(c.AllowedRoles, role)
}

func (c *Chart) Descriptor() ChartDescriptor {
	return ChartDescriptor{
		ChartID:     c.ID,
		Description: c.Description,
	}
}

func (c *Chart) TableName() string {
	return "charts"
}

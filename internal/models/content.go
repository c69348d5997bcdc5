package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentDocument is one editable page stored in the generic content table.
// PageName duplicates Data["page"] so older rows that only carry one of the
// two can still be found.
type ContentDocument struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	PageName  string                 `bson:"page_name" json:"page_name"`
	Data      map[string]interface{} `bson:"data" json:"data"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
}

// SectionConfig is a named, independently toggleable subtree of a document.
type SectionConfig struct {
	Enabled *bool                  `json:"enabled,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// IsEnabled reports the section flag; a missing flag means enabled.
func (s SectionConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// ToMap returns the stored representation of the section.
func (s SectionConfig) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	if s.Enabled != nil {
		m["enabled"] = *s.Enabled
	}
	if s.Data != nil {
		m["data"] = s.Data
	}
	return m
}

// Result is the outcome shape returned by content writes.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OK returns a successful Result.
func OK() Result { return Result{Success: true} }

// Failed wraps err into an unsuccessful Result.
func Failed(err error) Result {
	if err == nil {
		return Result{Success: false}
	}
	return Result{Success: false, Error: err.Error()}
}

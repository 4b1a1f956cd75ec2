package models

import "time"

// Base carries the primary key and timestamp pair shared by all entities.
// CreatedAt is written exactly once at insert time; UpdatedAt is rewritten
// on every save.
type Base struct {
	ID        uint      `json:"id"      gorm:"primaryKey"`
	CreatedAt time.Time `json:"created" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated" gorm:"autoUpdateTime"`
}

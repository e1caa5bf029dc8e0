package entities

import (
	"time"
)

type Recipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"column:recipe;type:text;not null" json:"recipe"`
	Thumbnail string    `gorm:"not null" json:"thumbnail"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

package models

import (
	"time"
	"unicode/utf8"
)

type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	// Group is optional; posts may live outside any group.
	GroupID   *uint     `gorm:"index" json:"group_id"`
	Group     *Group    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group"`
	Image     string    `json:"image"` // media path, "posts/<filename>"
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// String returns the first 15 runes of the text, enough to identify
// the post in listings and logs.
func (p Post) String() string {
	const max = 15
	if utf8.RuneCountInString(p.Text) <= max {
		return p.Text
	}
	return string([]rune(p.Text)[:max])
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"gorm.io/datatypes"
)

// NoticeType distinguishes where the client renders a notice.
type NoticeType string

const (
	NoticeBanner NoticeType = "banner"
	NoticePopup  NoticeType = "popup"
)

// Notice is an in-app bulletin shown on the home screen.
type Notice struct {
	ID        int64          `json:"id"`
	Type      NoticeType     `json:"type"`
	Content   string         `json:"content"`
	Info      string         `json:"info"`
	ImageURL  string         `json:"image_url"`
	LinkName  string         `json:"link_name"`
	Links     datatypes.JSON `json:"links"`
	Priority  int            `json:"priority"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
}

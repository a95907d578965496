// Package entity contains the core business objects of the project.
package entity

// TagType groups tags into filter families, e.g. cuisine or dietary.
type TagType string

// Tag is a curated search facet shown in the app's filter sheet.
type Tag struct {
	ID        int64   `json:"id"`
	Type      TagType `json:"type"`
	Name      string  `json:"name"`
	NameZh    string  `json:"name_zh"`
	SortOrder int     `json:"sort_order"`
	IsActive  bool    `json:"is_active"`
}

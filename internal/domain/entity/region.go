// Package entity contains the core business objects of the project.
package entity

// State is a top-level administrative region used for filtering.
type State struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	NameZh string `json:"name_zh"`

	// AreaCount is the number of areas under the state, populated by the
	// directory listing query.
	AreaCount int64 `json:"area_count"`
}

// Area is a district under a state.
type Area struct {
	ID      int64  `json:"id"`
	StateID int64  `json:"state_id"`
	Name    string `json:"name"`
	NameZh  string `json:"name_zh"`
}

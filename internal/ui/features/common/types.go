// Package common provides shared types and view components for UI features.
package common

// Section is one user-added sidebar placeholder section.
type Section struct {
	Name   string
	Hidden bool
}

// SidebarData holds data needed for the sidebar/shell rendering.
type SidebarData struct {
	CurrentPath string
	Teams       []string
	ActiveTeam  string
	Sections    []Section
}

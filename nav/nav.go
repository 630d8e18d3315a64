// Package nav computes the bottom navigation state. Everything here is a
// pure function of the request path, session presence, and configured
// colors.
package nav

// Route targets consumed by the shell.
const (
	HomeTarget    = "/"
	PlacesTarget  = "/lugares"
	ProfileTarget = "/perfil"
	LoginTarget   = "/login"
)

// Colors configures active/inactive link styling.
type Colors struct {
	Active   string `json:"active"`
	Inactive string `json:"inactive"`
}

// DefaultColors matches the portal theme.
var DefaultColors = Colors{Active: "#1d4ed8", Inactive: "#6b7280"}

// Link is one rendered navigation entry.
type Link struct {
	Label  string `json:"label"`
	Target string `json:"target"`
	Active bool   `json:"active"`
	Color  string `json:"color"`
}

// ProfileLinkTarget resolves the "Eu" link: the profile page when a
// session exists, the login screen otherwise.
func ProfileLinkTarget(hasSession bool) string {
	if hasSession {
		return ProfileTarget
	}
	return LoginTarget
}

// IsActive reports whether a link target matches the current path. The
// profile link is active on both of its destinations so the highlight
// does not depend on auth state.
func IsActive(path, target string) bool {
	if target == ProfileTarget || target == LoginTarget {
		return path == ProfileTarget || path == LoginTarget
	}
	return path == target
}

// LinkColor picks the styling for a link given the current path.
func LinkColor(path, target string, colors Colors) string {
	if IsActive(path, target) {
		return colors.Active
	}
	return colors.Inactive
}

// Links builds the full bottom bar for the current path and session
// presence.
func Links(path string, hasSession bool, colors Colors) []Link {
	targets := []struct {
		label  string
		target string
	}{
		{"Início", HomeTarget},
		{"Lugares", PlacesTarget},
		{"Eu", ProfileLinkTarget(hasSession)},
	}

	links := make([]Link, 0, len(targets))
	for _, t := range targets {
		links = append(links, Link{
			Label:  t.label,
			Target: t.target,
			Active: IsActive(path, t.target),
			Color:  LinkColor(path, t.target, colors),
		})
	}
	return links
}

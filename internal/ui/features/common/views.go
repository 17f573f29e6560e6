package common

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// navEntries are the built-in sidebar destinations.
var navEntries = []struct {
	Label string
	Path  string
}{
	{"Home", "/"},
	{"Hitters", "/hitters"},
	{"Pitchers", "/pitchers"},
	{"Loads", "/loads"},
}

// Layout renders the full HTML shell around a page's content component.
// updatesPath, when set, subscribes the page to its SSE update stream.
func Layout(title string, isDev bool, updatesPath string, sidebar SidebarData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s - Rotodash</title>
<link rel="stylesheet" href="/static/app.css"/>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
</head>
<body>
<div class="app">
`, html.EscapeString(title)); err != nil {
			return err
		}

		if err := Sidebar(sidebar).Render(ctx, w); err != nil {
			return err
		}

		if updatesPath != "" {
			if _, err := fmt.Fprintf(w, `<main id="ui-content" data-init="@get('%s')">`, html.EscapeString(updatesPath)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<main id="ui-content">`); err != nil {
				return err
			}
		}

		if err := content.Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, "</main>\n</div>\n"); err != nil {
			return err
		}

		if isDev {
			if _, err := io.WriteString(w, `<div data-init="@get('/reload')"></div>`+"\n"); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// Sidebar renders the navigation sidebar. It carries the id the section
// handlers patch over SSE when visibility changes.
func Sidebar(data SidebarData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<aside id="sidebar" class="sidebar">
<h1>Rotodash</h1>
<nav>
`); err != nil {
			return err
		}

		for _, entry := range navEntries {
			class := ""
			if entry.Path == data.CurrentPath {
				class = ` class="active"`
			}
			if _, err := fmt.Fprintf(w, "<a href=%q%s>%s</a>\n", entry.Path, class, html.EscapeString(entry.Label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</nav>\n"); err != nil {
			return err
		}

		if len(data.Teams) > 0 {
			if err := writeTeamFilter(w, data); err != nil {
				return err
			}
		}

		for _, section := range data.Sections {
			if err := writeSection(w, section); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<div class="sidebar-section sidebar-form">
<input type="text" placeholder="Add section" data-bind-newSection/>
<button data-on-click="@post('/sections')">Add</button>
</div>
</aside>
`)
		return err
	})
}

func writeTeamFilter(w io.Writer, data SidebarData) error {
	if _, err := io.WriteString(w, `<div class="sidebar-section">
<div class="section-title"><span>Teams</span></div>
<div class="section-body">
`); err != nil {
		return err
	}

	allClass := ""
	if data.ActiveTeam == "" {
		allClass = ` class="active"`
	}
	if _, err := fmt.Fprintf(w, "<a href=%q%s>All teams</a>\n", data.CurrentPath, allClass); err != nil {
		return err
	}

	for _, team := range data.Teams {
		class := ""
		if team == data.ActiveTeam {
			class = ` class="active"`
		}
		href := data.CurrentPath + "?team=" + url.QueryEscape(team)
		if _, err := fmt.Fprintf(w, "<a href=%q%s>%s</a>\n", href, class, html.EscapeString(team)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</div>\n</div>\n")
	return err
}

func writeSection(w io.Writer, section Section) error {
	class := "sidebar-section"
	marker := "−"
	if section.Hidden {
		class += " hidden"
		marker = "+"
	}
	_, err := fmt.Fprintf(w, `<div class=%q>
<div class="section-title" data-on-click="@post('/sections/%s/toggle')"><span>%s</span><span>%s</span></div>
<div class="section-body"><p>Pinned notes for %s</p></div>
</div>
`, class, url.PathEscape(section.Name), html.EscapeString(section.Name), marker, html.EscapeString(section.Name))
	return err
}

// EmptyState renders the placeholder shown when no data has been loaded yet.
func EmptyState(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="empty-state"><p>%s</p><p>Run <code>rotodash load &lt;export.csv&gt;</code> to get started.</p></div>`,
			html.EscapeString(message))
		return err
	})
}

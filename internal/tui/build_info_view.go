// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/koafy/setter-console/models"
)

func renderBuildInfoWindow(info models.BuildInfo, healthErr error, checked bool) string {
	var b strings.Builder

	b.WriteString("Application: Setter Console\n")
	b.WriteString("Version: ")
	b.WriteString(info.Version)
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.Date)
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.Commit)
	b.WriteString("\n")
	b.WriteString("API: ")
	switch {
	case !checked:
		b.WriteString("checking...")
	case healthErr != nil:
		b.WriteString(errorStyle.Render(humanizeError(healthErr)))
	default:
		b.WriteString(successStyle.Render("reachable"))
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}

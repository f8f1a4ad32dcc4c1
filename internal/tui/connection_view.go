// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/koafy/setter-console/internal/session"
	"github.com/koafy/setter-console/models"
	"github.com/mdp/qrterminal/v3"
)

const imageQRPrefix = "data:image/"

// isImageQR reports whether the QR payload is a rendered image rather than
// the raw pairing code.
func isImageQR(qr string) bool {
	return strings.HasPrefix(qr, imageQRPrefix)
}

// renderQR draws a raw pairing code with half-block characters. Image
// payloads cannot be drawn in a terminal and are only announced.
func renderQR(qr string) string {
	if qr == "" {
		return ""
	}
	if isImageQR(qr) {
		return "The QR code is an image. Press y to copy it and open it in a browser."
	}

	var b strings.Builder
	qrterminal.GenerateHalfBlock(qr, qrterminal.L, &b)
	return strings.TrimRight(b.String(), "\n")
}

func renderConnection(state session.State, spinnerView, status string) string {
	var b strings.Builder

	if state.Account.IsZero() {
		b.WriteString("No account is configured.\n")
		b.WriteString("Set ACCOUNT_ID or ACCOUNT_ID_TOKEN and restart the console.")
		return renderPage("WHATSAPP CONNECTION", b.String(), "v: about")
	}

	b.WriteString("Account: ")
	b.WriteString(valueOrDash(state.Account.Name))
	if state.Account.Email != "" {
		b.WriteString(" <")
		b.WriteString(state.Account.Email)
		b.WriteString(">")
	}
	b.WriteString("\n")

	b.WriteString("Status: ")
	b.WriteString(statusLabel(state.Status.Status))
	if state.Loading {
		b.WriteString(" ")
		b.WriteString(spinnerView)
	}
	b.WriteString("\n")

	if state.Status.Message != "" {
		b.WriteString(infoStyle.Render(state.Status.Message))
		b.WriteString("\n")
	}
	if state.Status.Error != "" {
		b.WriteString(errorStyle.Render("Error: " + state.Status.Error))
		b.WriteString("\n")
	}

	if state.Status.Status == models.StatusConnected {
		b.WriteString("Bot: ")
		switch {
		case state.Bot.IsLoading:
			b.WriteString("updating... ")
			b.WriteString(spinnerView)
		case state.Bot.IsPaused:
			b.WriteString(warningStyle.Render("paused"))
		default:
			b.WriteString(successStyle.Render("active"))
		}
		b.WriteString("\n")
	}

	if state.Status.HasQR() {
		b.WriteString("\nScan the code with WhatsApp > Linked devices:\n\n")
		b.WriteString(renderQR(state.Status.QR))
		b.WriteString("\n")
	}

	if status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(status))
	}

	return renderPage("WHATSAPP CONNECTION", b.String(), connectionHotKeys(state))
}

func connectionHotKeys(state session.State) string {
	hot := []string{}
	s := state.Status.Status

	if !s.BlocksConnect() {
		hot = append(hot, "c: connect")
	}
	if s != models.StatusDisconnected {
		hot = append(hot, "d: disconnect")
	}
	if s == models.StatusConnected {
		hot = append(hot, "p: pause/resume bot", "m: chats")
	}
	if state.Status.HasQR() && isImageQR(state.Status.QR) {
		hot = append(hot, "y: copy QR")
	}
	hot = append(hot, "r: check status", "n: notifications", "h: history", "v: about")

	return strings.Join(hot, "  ")
}

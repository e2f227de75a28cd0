package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the doctor report to a string.
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(renderHeader(data))
	b.WriteString("\n")

	b.WriteString(renderConfigInfo(data))
	b.WriteString("\n")

	b.WriteString(renderModelInfo(data))
	b.WriteString("\n")

	b.WriteString(renderBehaviorInfo(data))

	return b.String()
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("👻 Ghostline ") + valueStyle.Render(data.Version) + "\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("   commit %s, built %s", data.GitCommit, data.BuildTime)))
	return b.String()
}

func renderConfigInfo(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("⚙️  Configuration:") + "\n")
	b.WriteString("   " + keyStyle.Render("Path: ") + subtleStyle.Render(data.ConfigPath) + "\n")

	if !data.ConfigExists {
		b.WriteString("   " + keyStyle.Render("File: ") + warningStyle.Render("not found, using built-in defaults") + "\n")
		return b.String()
	}

	if data.ConfigValid {
		b.WriteString("   " + keyStyle.Render("Schema: ") + successStyle.Render("✓ Valid") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("Schema: ") + errorStyle.Render("✗ Invalid") + "\n")
		for _, msg := range data.ConfigErrors {
			b.WriteString("      " + errorStyle.Render("• "+msg) + "\n")
		}
	}
	return b.String()
}

func renderModelInfo(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("🧠 Model:") + "\n")
	b.WriteString("   " + keyStyle.Render("Provider: ") + valueStyle.Render(data.Provider) + "\n")
	b.WriteString("   " + keyStyle.Render("Name: ") + valueStyle.Render(data.Model) + "\n")
	if data.Endpoint != "" {
		b.WriteString("   " + keyStyle.Render("Endpoint: ") + subtleStyle.Render(data.Endpoint) + "\n")
	}
	if data.APIKeySet {
		b.WriteString("   " + keyStyle.Render("API key: ") + successStyle.Render("✓ Set") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("API key: ") + errorStyle.Render("✗ Not set") + "\n")
		b.WriteString("   " + warningStyle.Render("Set model.api_key or model.api_key_env in the config") + "\n")
	}
	b.WriteString("   " + keyStyle.Render("Timeout: ") + valueStyle.Render(fmt.Sprintf("%d ms", data.TimeoutMS)) + "\n")
	return b.String()
}

func renderBehaviorInfo(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("🎛️  Behavior:") + "\n")
	b.WriteString("   " + keyStyle.Render("Auto delay: ") + valueStyle.Render(fmt.Sprintf("%d ms", data.AutoDelayMS)) + "\n")
	b.WriteString("   " + keyStyle.Render("Sanitize prompts: ") + renderBool(data.Sanitize) + "\n")
	b.WriteString("   " + keyStyle.Render("Flag dangerous commands: ") + renderBool(data.BlockDangerous) + "\n")
	b.WriteString("   " + keyStyle.Render("Include cwd listing: ") + renderBool(data.IncludeCwdListing) + "\n")
	b.WriteString("   " + keyStyle.Render("Log level: ") + valueStyle.Render(data.LogLevel) + "\n")
	return b.String()
}

func renderBool(v bool) string {
	if v {
		return successStyle.Render("enabled")
	}
	return subtleStyle.Render("disabled")
}

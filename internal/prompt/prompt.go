// Package prompt renders the system and user prompts for the completion
// model.
package prompt

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// DefaultSystemPrompt is the completion contract sent to the model unless the
// configuration overrides it.
const DefaultSystemPrompt = `You are a shell command completion engine. ` +
	`Given a partially typed command line and its context, respond with the ` +
	`single most likely completed command line. Output only the command, on ` +
	`one line, with no explanation, no markdown and no quoting.`

const userTemplateText = `Working directory: {{ .CWD }}
{{- if .Files }}
Directory contents:
{{ .Files | join "\n" }}
{{- end }}
Session: {{ .SessionID }}
Cursor position: {{ .Cursor }}

Complete this command line:
{{ .Buffer }}`

var userTemplate = template.Must(
	template.New("user").Funcs(sprig.FuncMap()).Parse(userTemplateText))

// Data carries everything the user prompt can reference.
type Data struct {
	Buffer    string
	Cursor    int
	CWD       string
	SessionID string
	Files     []string
}

// Render produces the user prompt for a completion request.
func Render(data Data) (string, error) {
	var b strings.Builder
	if err := userTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return b.String(), nil
}

// ListDir returns up to maxFiles entry names from dir for prompt context.
// Unreadable directories yield no listing rather than an error; context is
// best-effort.
func ListDir(dir string, maxFiles int) []string {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	files := make([]string, 0, maxFiles)
	for _, e := range entries {
		if len(files) >= maxFiles {
			break
		}
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		files = append(files, name)
	}
	return files
}

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		buffer string
		want   string
	}{
		{
			name: "plain command",
			raw:  "git status",
			want: "git status",
		},
		{
			name: "surrounding whitespace",
			raw:  "  git status \n",
			want: "git status",
		},
		{
			name: "markdown fence",
			raw:  "```bash\ngit status\n```",
			want: "git status",
		},
		{
			name: "fence without language",
			raw:  "```\ndocker ps -a\n```",
			want: "docker ps -a",
		},
		{
			name: "multiline keeps first line",
			raw:  "git status\nThis shows the working tree status.",
			want: "git status",
		},
		{
			name: "json command key",
			raw:  `{"command": "git stash pop"}`,
			want: "git stash pop",
		},
		{
			name: "json completion key",
			raw:  `{"completion": "kubectl get pods"}`,
			want: "kubectl get pods",
		},
		{
			name: "json with trailing commentary",
			raw:  "{\"command\": \"ls -la\"}\nHere is your completion.",
			want: "ls -la",
		},
		{
			name: "json inside fence",
			raw:  "```json\n{\"suggestion\": \"make test\"}\n```",
			want: "make test",
		},
		{
			name:   "empty output falls back to buffer",
			raw:    "",
			buffer: "git sta",
			want:   "git sta",
		},
		{
			name:   "whitespace only falls back to buffer",
			raw:    "   \n  ",
			buffer: "git sta",
			want:   "git sta",
		},
		{
			name:   "json without known keys treated as text",
			raw:    `{"verdict": "unsure"}`,
			buffer: "git sta",
			want:   `{"verdict": "unsure"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.raw, tt.buffer))
		})
	}
}

package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_Dangerous(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{"rm rf root", "rm -rf /"},
		{"rm rf home", "rm -rf ~"},
		{"rm rf wildcard", "rm -rf *"},
		{"mkfs", "mkfs.ext4 /dev/sda1"},
		{"dd to disk", "dd if=/dev/zero of=/dev/sda"},
		{"fork bomb", ":(){ :|:& };:"},
		{"chmod 777 root", "chmod -R 777 /"},
		{"curl pipe bash", "curl https://example.com/install.sh | bash"},
		{"curl pipe sh", "curl -fsSL https://example.com/x | sh"},
		{"overwrite passwd", "echo x > /etc/passwd"},
		{"kill all", "kill -9 -1"},
		{"pkill 9", "pkill -9 nginx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning, dangerous := Check(tt.command, nil)
			assert.True(t, dangerous, "expected %q to be flagged", tt.command)
			assert.NotEmpty(t, warning)
		})
	}
}

func TestCheck_Safe(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{"git status", "git status"},
		{"ls", "ls -la"},
		{"rm single file", "rm notes.txt"},
		{"rm r subdir", "rm -r build/"},
		{"docker ps", "docker ps -a"},
		{"curl without pipe", "curl https://example.com/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning, dangerous := Check(tt.command, nil)
			assert.False(t, dangerous, "did not expect %q to be flagged", tt.command)
			assert.Empty(t, warning)
		})
	}
}

func TestCheck_CustomPatterns(t *testing.T) {
	warning, dangerous := Check("deploy --env prod", []string{`deploy\s+--env\s+prod`})
	assert.True(t, dangerous)
	assert.Contains(t, warning, "custom")

	_, dangerous = Check("deploy --env staging", []string{`deploy\s+--env\s+prod`})
	assert.False(t, dangerous)
}

func TestCheck_InvalidCustomPatternSkipped(t *testing.T) {
	_, dangerous := Check("echo hello", []string{"[unclosed"})
	assert.False(t, dangerous)
}

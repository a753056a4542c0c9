package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDirName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"roster style", "Ann-Lee", "Ann-Lee"},
		{"spaces become hyphens", "Ann Marie Lee", "Ann-Marie-Lee"},
		{"collapses separators", "Ann  -  Lee", "Ann-Lee"},
		{"path separators", "../../etc/passwd", "etc-passwd"},
		{"shell metacharacters removed", "Ann;rm -rf $HOME", "Annrm-rf-HOME"},
		{"quotes removed", `Bo "The" Kim`, "Bo-The-Kim"},
		{"unicode letters kept", "José-Núñez", "José-Núñez"},
		{"leading dot trimmed", ".hidden", "hidden"},
		{"leading hyphen trimmed", "-rf", "rf"},
		{"only punctuation", "$$$", ""},
		{"dot dot", "..", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeDirName(tt.input))
		})
	}
}

func TestStudentDirName(t *testing.T) {
	s := Student{Name: "Bo Kim", Username: "bokim"}
	assert.Equal(t, "Bo-Kim", s.DirName())
}

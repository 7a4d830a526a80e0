package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantError   bool
		errorString string
	}{
		{
			name:        "Missing --resume flag",
			args:        []string{"score"},
			wantError:   true,
			errorString: "resume file is required",
		},
		{
			name:        "Nonexistent resume file",
			args:        []string{"score", "--resume", "/nonexistent/resume.txt"},
			wantError:   true,
			errorString: "resume",
		},
		{
			name:        "Adaptive without database",
			args:        []string{"score", "--resume", "/nonexistent/resume.txt", "--adaptive"},
			wantError:   true,
			errorString: "resume",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Contains(t, string(output), tt.errorString)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/ats-scanner/internal/config"
	"github.com/stretchr/testify/require"
)

const testJD = "Looking for a Product Manager with SQL and Agile experience to own the roadmap."

const testResume = `Jane Doe - jane@example.com

Experience
- Led migration to reduce costs by 30%
- Responsible for reporting
- Built SQL dashboards for 4 squads

Education
BSc Economics

Skills
SQL, Jira, roadmap planning`

// clearEnv keeps a developer's .env from leaking into command tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvPort, config.EnvLexicon, config.EnvMaxUploadBytes, config.EnvTokenizer, config.EnvFormat} {
		t.Setenv(key, "")
	}
}

// runCLI executes a fresh command tree in-process and returns its stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

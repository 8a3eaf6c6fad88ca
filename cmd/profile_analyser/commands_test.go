package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/config"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/server"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "jane.txt", sampleResume)
	writeFile(t, dir, "short.txt", "John Smith\njohn@example.com")
	writeFile(t, dir, "empty.txt", "")
	writeFile(t, dir, "notes.csv", "ignored")
	outDir := filepath.Join(t.TempDir(), "reports")

	stdout, stderr, err := executeCommand(t, "batch", dir, "--out-dir", outDir, "-c", "2")

	require.NoError(t, err)
	assert.Contains(t, stdout, "jane.txt")
	assert.Contains(t, stdout, "short.txt")
	assert.NotContains(t, stdout, "notes.csv")
	assert.Contains(t, stderr, "skipped")
	assert.Contains(t, stderr, "empty.txt")

	data, err := os.ReadFile(filepath.Join(outDir, "jane.json"))
	require.NoError(t, err)
	var report types.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "jane.txt", report.Source.FileName)
	assert.NoFileExists(t, filepath.Join(outDir, "empty.json"))
}

func TestBatchCommand_NoSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.csv", "ignored")

	_, _, err := executeCommand(t, "batch", dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no supported résumé files")
}

func TestDetectFieldCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jane.txt", sampleResume)

	stdout, _, err := executeCommand(t, "detect-field", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Field: "+string(types.FieldDataScience))
	assert.Contains(t, stdout, "Field from skills: ")
}

func TestDetectFieldCommand_RequiresFile(t *testing.T) {
	_, _, err := executeCommand(t, "detect-field")
	require.Error(t, err)
}

func TestValidateFormatCommand(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, "validate-format", writeFile(t, dir, "short.txt", "Jane Doe\nEngineer"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "[warning] "+types.WarningShortContent)

	long := strings.Repeat("Delivered reliable services and mentored engineers on the platform team. ", 20)
	stdout, _, err = executeCommand(t, "validate-format", writeFile(t, dir, "long.txt", long))
	require.NoError(t, err)
	assert.Equal(t, "No format issues detected.\n", stdout)
}

func TestTokenCommand(t *testing.T) {
	const secret = "a-test-secret-of-32-characters!!"
	t.Setenv("PROFILE_SERVER_JWT_SECRET", secret)

	stdout, _, err := executeCommand(t, "token", "ci-runner")
	require.NoError(t, err)

	jwtConfig, err := config.NewJWTConfig(secret, 24)
	require.NoError(t, err)
	claims, err := server.NewJWTService(jwtConfig).ValidateToken(strings.TrimSpace(stdout))
	require.NoError(t, err)
	assert.Equal(t, "ci-runner", claims.ClientID)
}

func TestTokenCommand_WithoutSecret(t *testing.T) {
	t.Setenv("PROFILE_SERVER_JWT_SECRET", "")

	_, _, err := executeCommand(t, "token", "ci-runner")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret is not configured")
}

func TestQueueCommands_RequireURL(t *testing.T) {
	t.Setenv("PROFILE_QUEUE_URL", "")

	_, _, err := executeCommand(t, "enqueue", "resumes/jane.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue.url is required")

	_, _, err = executeCommand(t, "worker")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue.url is required")
}

func TestMigrateCommand_RequiresDatabase(t *testing.T) {
	t.Setenv("PROFILE_DATABASE_URL", "")

	_, _, err := executeCommand(t, "migrate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

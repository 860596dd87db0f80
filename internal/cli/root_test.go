package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bladr/internal/diary"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes one bladr invocation against the given slot path,
// with the config file pointed at a path that never exists so the
// built-in defaults apply.
func runCLI(t *testing.T, dataPath, stdin string, args ...string) cliResult {
	t.Helper()

	cmd := NewRootCommand()
	full := append([]string{
		"--config", filepath.Join(t.TempDir(), "no-config.yaml"),
		"--data", dataPath,
	}, args...)
	cmd.SetArgs(full)

	var out, errBuf bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}

	err := cmd.Execute()
	return cliResult{stdout: out.String(), stderr: errBuf.String(), err: err}
}

// logJSON logs an event with --format json and returns the created
// event from the response envelope.
func logJSON(t *testing.T, dataPath string, args ...string) diary.Event {
	t.Helper()

	res := runCLI(t, dataPath, "", append(args, "--format", "json")...)
	require.NoError(t, res.err, "stderr: %s", res.stderr)

	var resp struct {
		Status string      `json:"status"`
		Data   diary.Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	require.Equal(t, "ok", resp.Status)
	require.NotEmpty(t, resp.Data.ID)
	return resp.Data
}

func slotPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "events.json")
}

func TestCommandsRegistered(t *testing.T) {
	cmd := NewRootCommand()
	want := []string{"log", "drink", "day", "heatmap", "edit", "delete", "export", "import", "clear"}
	got := map[string]bool{}
	for _, sub := range cmd.Commands() {
		got[sub.Name()] = true
	}
	for _, name := range want {
		assert.True(t, got[name], "missing command %s", name)
	}
}

func TestInvalidFormatRejected(t *testing.T) {
	res := runCLI(t, slotPath(t), "", "day", "--format", "xml")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid format")
}

func TestLogQuickFlow(t *testing.T) {
	path := slotPath(t)

	res := runCLI(t, path, "", "log")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Logged urination at")

	day := runCLI(t, path, "", "day")
	require.NoError(t, day.err)
	assert.Contains(t, day.stdout, "Urinations:    1")
	assert.Contains(t, day.stdout, "Urination")
}

func TestLogLeakWithTrigger(t *testing.T) {
	path := slotPath(t)

	res := runCLI(t, path, "", "log", "--type", "leak", "--severity", "3", "--trigger", "Sneezing")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Logged leak at")

	day := runCLI(t, path, "", "day")
	require.NoError(t, day.err)
	assert.Contains(t, day.stdout, "Leak Event")
	assert.Contains(t, day.stdout, "Trigger: Sneezing")
}

func TestLogRejectsBadInput(t *testing.T) {
	path := slotPath(t)

	res := runCLI(t, path, "", "log", "--trigger", "Skydiving")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))

	res = runCLI(t, path, "", "log", "--urgency", "9")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	res = runCLI(t, path, "", "log", "--date", tomorrow)
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))

	// Nothing was written.
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDrinkCaffeineNote(t *testing.T) {
	path := slotPath(t)

	res := runCLI(t, path, "", "drink", "--drink", "Coffee", "--volume", "300")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Logged 300ml Coffee at")
	assert.Contains(t, res.stdout, "Contains caffeine.")

	res = runCLI(t, path, "", "drink")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Logged 250ml Water at")
	assert.NotContains(t, res.stdout, "Contains caffeine.")
}

func TestDrinkRejectsVolume(t *testing.T) {
	res := runCLI(t, slotPath(t), "", "drink", "--volume", "20")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
}

func TestEditOverlaysOnlyChangedFlags(t *testing.T) {
	path := slotPath(t)
	ev := logJSON(t, path, "log", "--urgency", "2", "--notes", "first")

	res := runCLI(t, path, "", "edit", ev.ID, "--urgency", "5", "--format", "json")
	require.NoError(t, res.err)

	var resp struct {
		Data diary.Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, 5, resp.Data.Urgency)
	assert.Equal(t, "first", resp.Data.Notes, "unset flags keep current values")
	assert.Equal(t, ev.ID, resp.Data.ID)
}

func TestEditUnknownID(t *testing.T) {
	res := runCLI(t, slotPath(t), "", "edit", "missing", "--urgency", "5")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, GetExitCode(res.err))
}

func TestDeleteConfirmation(t *testing.T) {
	path := slotPath(t)
	ev := logJSON(t, path, "log")

	// Declining the prompt leaves the event in place.
	res := runCLI(t, path, "n\n", "delete", ev.ID)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Aborted.")

	day := runCLI(t, path, "", "day")
	assert.Contains(t, day.stdout, "Urinations:    1")

	res = runCLI(t, path, "", "delete", ev.ID, "--yes")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Deleted event "+ev.ID)

	day = runCLI(t, path, "", "day")
	assert.Contains(t, day.stdout, "Urinations:    0")
}

func TestDeleteUnknownID(t *testing.T) {
	res := runCLI(t, slotPath(t), "", "delete", "missing", "--yes")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, GetExitCode(res.err))
}

func TestExportImportRoundTrip(t *testing.T) {
	path := slotPath(t)
	logJSON(t, path, "log", "--urgency", "4")
	logJSON(t, path, "drink", "--drink", "Tea")

	exportPath := filepath.Join(t.TempDir(), "export.json")
	res := runCLI(t, path, "", "export", exportPath)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Exported 2 events to "+exportPath)

	res = runCLI(t, path, "y\n", "clear")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "All data cleared.")

	res = runCLI(t, path, "", "import", exportPath)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Imported 2 events from "+exportPath)

	day := runCLI(t, path, "", "day")
	assert.Contains(t, day.stdout, "Urinations:    1")
	assert.Contains(t, day.stdout, "Tea")
}

func TestExportEmpty(t *testing.T) {
	res := runCLI(t, slotPath(t), "", "export")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No data to export.")
}

func TestImportRejectionLeavesSlotUntouched(t *testing.T) {
	path := slotPath(t)
	logJSON(t, path, "log")

	badPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`[{"id": "x", "timestamp": "t", "type": "nap"}]`), 0o644))

	res := runCLI(t, path, "", "import", badPath)
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, GetExitCode(res.err))

	day := runCLI(t, path, "", "day")
	assert.Contains(t, day.stdout, "Urinations:    1")
}

func TestImportMissingFile(t *testing.T) {
	res := runCLI(t, slotPath(t), "", "import", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
}

func TestHeatmapRuns(t *testing.T) {
	path := slotPath(t)
	logJSON(t, path, "log", "--type", "leak", "--severity", "2")

	res := runCLI(t, path, "", "heatmap")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Leak heatmap: 1 leak in past 30 days")
	assert.Contains(t, res.stdout, "Less . ░ ▒ ▓ █ More")
}

func TestClearEmptySlot(t *testing.T) {
	res := runCLI(t, slotPath(t), "", "clear")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No data to clear.")
}

func TestSQLiteBackendEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")

	res := runCLI(t, path, "", "log", "--store", "sqlite")
	require.NoError(t, res.err)

	day := runCLI(t, path, "", "day", "--store", "sqlite")
	require.NoError(t, day.err)
	assert.Contains(t, day.stdout, "Urinations:    1")
}

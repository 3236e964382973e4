package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNextOccurrence_MonthEndOverflow(t *testing.T) {
	out, err := runCommand(t, "next-occurrence",
		"--frequency", "monthly",
		"--start", "2024-01-31",
		"--last", "2024-01-31",
		"--now", "2024-02-15",
		"--json",
	)
	require.NoError(t, err)

	var got occurrence
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.NextOccurrence)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), *got.NextOccurrence)
	assert.False(t, got.IsDue)
}

func TestNextOccurrence_OverdueRunsNow(t *testing.T) {
	out, err := runCommand(t, "next-occurrence",
		"--frequency", "weekly",
		"--start", "2024-01-01",
		"--now", "2024-01-10T00:00:00Z",
		"--json",
	)
	require.NoError(t, err)

	var got occurrence
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), *got.NextOccurrence)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *got.NextRun)
	assert.True(t, got.IsDue)
}

func TestNextOccurrence_Ended(t *testing.T) {
	out, err := runCommand(t, "next-occurrence",
		"--frequency", "daily",
		"--start", "2024-01-01",
		"--end", "2024-01-05",
		"--now", "2024-02-01",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "no further occurrences")
}

func TestNextOccurrence_TextOutput(t *testing.T) {
	out, err := runCommand(t, "next-occurrence",
		"--frequency", "yearly",
		"--start", "2024-02-29",
		"--now", "2024-03-01",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "next occurrence: 2025-03-01T00:00:00Z")
	assert.Contains(t, out, "due:             false")
}

func TestNextOccurrence_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown frequency", []string{"--frequency", "hourly", "--start", "2024-01-01"}},
		{"bad start", []string{"--frequency", "daily", "--start", "01/02/2024"}},
		{"bad end", []string{"--frequency", "daily", "--start", "2024-01-01", "--end", "soon"}},
		{"missing start", []string{"--frequency", "daily"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, append([]string{"next-occurrence"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestRegenerateInviteKey_RejectsMalformedID(t *testing.T) {
	_, err := runCommand(t, "regenerate-invite-key", "not-a-uuid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid group id")
}

func TestMigrateDown_RequiresPositiveSteps(t *testing.T) {
	_, err := runCommand(t, "migrate", "down", "--steps", "0")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--steps")
}

func TestPruneAudit_RequiresPositiveWindow(t *testing.T) {
	_, err := runCommand(t, "prune-audit", "--older-than", "-1h")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--older-than")
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("2024-05-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), got)

	got, err = parseTime("2024-05-06T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC), got)

	none, err := parseOptionalTime("")
	require.NoError(t, err)
	assert.Nil(t, none)
}

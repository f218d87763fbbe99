package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/services"
)

func setupEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATA_SOURCE", "DB_TYPE", "DB_DATABASE", "SIMULATED_LATENCY", "REDIS_URL",
		"SUPPORTCTL_DATA_SOURCE", "SUPPORTCTL_TIMEZONE",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("NO_COLOR", "1")
	t.Chdir(t.TempDir())
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestApps_JSON(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "apps", "--json")
	require.NoError(t, err)

	var apps []models.AppWithUser
	require.NoError(t, json.Unmarshal([]byte(out), &apps))
	require.Len(t, apps, 14)
	assert.Equal(t, "Budget Buddy", apps[0].AppName)

	var orphan *models.AppWithUser
	for i := range apps {
		if apps[i].AppName == "Recipe Box" {
			orphan = &apps[i]
		}
	}
	require.NotNil(t, orphan)
	assert.Equal(t, "Unknown User", orphan.User.Name)
}

func TestApps_UserSortedByName(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "apps", "--user", "1", "--sort", services.SortByAppName, "--order", "asc", "--json")
	require.NoError(t, err)

	var apps []models.AppWithUser
	require.NoError(t, json.Unmarshal([]byte(out), &apps))
	require.Len(t, apps, 3)
	for i, a := range apps {
		assert.Equal(t, 1, a.UserID)
		if i > 0 {
			assert.LessOrEqual(t, apps[i-1].AppName, a.AppName)
		}
	}
}

func TestApps_Table(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "apps", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Apps")
	assert.Contains(t, out, "Budget Buddy")
	assert.Contains(t, out, "Unknown User")
}

func TestApps_BadSort(t *testing.T) {
	setupEnv(t)

	_, _, err := execute(t, "apps", "--user", "1", "--sort", "Nope")
	assert.Error(t, err)
}

func TestTrends_CustomRangeJSON(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "trends", "--range", "custom", "--start", "2026-01-01", "--end", "2026-12-31", "--group-by", "month", "--json")
	require.NoError(t, err)

	var report services.TrendsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 56, report.Summary.TotalInteractions)
	assert.Equal(t, 1, report.Quality.Unparsable)
	assert.Equal(t, []int{57}, report.Quality.LogIDs)
	require.NotEmpty(t, report.Buckets)
	assert.Equal(t, "2026-08", report.Buckets[0].Date)

	total := 0
	for _, b := range report.Buckets {
		total += b.Count
	}
	assert.Equal(t, 56, total)
}

func TestTrends_TableWarnsAboutUnparsable(t *testing.T) {
	setupEnv(t)

	out, errOut, err := execute(t, "trends", "--range", "custom", "--start", "2026-10-01")
	require.NoError(t, err)
	assert.Contains(t, out, "AVG SENTIMENT")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, errOut, "[WARN] 1 logs skipped")
}

func TestTrends_InvalidRange(t *testing.T) {
	setupEnv(t)

	_, _, err := execute(t, "trends", "--range", "12d")
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "summary", "--json")
	require.NoError(t, err)

	var sum services.StatusSummary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 14, sum.TotalApps)
	assert.Equal(t, sum.TotalApps, sum.CriticalCount+sum.StruggleCount+sum.HealthyCount)
}

func TestSummary_User(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "summary", "--user", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Maya Chen")
	assert.Contains(t, out, "Apps:          3")

	_, _, err = execute(t, "summary", "--user", "999")
	assert.Error(t, err)
}

func TestStatuses_JSON(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "statuses", "--json")
	require.NoError(t, err)

	var rows []statusRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	var angry *statusRow
	for i := range rows {
		if rows[i].Status == "angry" {
			angry = &rows[i]
		}
	}
	require.NotNil(t, angry)
	assert.Equal(t, "Angry", angry.Label)
	assert.True(t, angry.Known)
}

func TestTaxonomy(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "taxonomy")
	require.NoError(t, err)
	assert.Contains(t, out, "Positive Flow")
	assert.Contains(t, out, "going_in_circles")
}

func TestInvalidColorMode(t *testing.T) {
	setupEnv(t)

	_, _, err := execute(t, "taxonomy", "--color", "rainbow")
	assert.Error(t, err)
}

func TestDataSourceFlagValidated(t *testing.T) {
	setupEnv(t)

	_, _, err := execute(t, "apps", "--data-source", "database")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DATABASE")
}

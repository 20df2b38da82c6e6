package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

func TestQueryCmd_Use(t *testing.T) {
	assert.Equal(t, "query [text]", queryCmd.Use)
}

func TestQueryCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("query")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestQueryCmd_HasLimitFlag(t *testing.T) {
	flag := queryCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "20", flag.DefValue)
}

func TestQueryCmd_PrintsBothLanes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	services.Launcher = &fakeLauncher{
		set: domain.CombinedResultSet{
			Query: "rep",
			Horizontal: []domain.ResultItem{
				{Kind: domain.KindApplication, DisplayName: "Reports App"},
			},
			Vertical: []domain.ResultItem{
				{Kind: domain.KindFileHistory, DisplayName: "report.pdf", Path: "/home/u/report.pdf"},
			},
		},
	}

	out, err := execute("query", "rep")

	require.NoError(t, err)
	assert.Contains(t, out, "Quick launch:")
	assert.Contains(t, out, "Reports App")
	assert.Contains(t, out, "Results:")
	assert.Contains(t, out, "/home/u/report.pdf")
}

func TestQueryCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("query", "zzzz")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestQueryCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	services.Launcher = &fakeLauncher{
		set: domain.CombinedResultSet{
			Query: "rep",
			Vertical: []domain.ResultItem{
				{Kind: domain.KindIndexHit, DisplayName: "report.pdf", Path: "/idx/report.pdf"},
			},
		},
	}

	out, err := execute("query", "--json", "rep")
	defer func() { queryJSON = false }()

	require.NoError(t, err)
	assert.Contains(t, out, `"query": "rep"`)
	assert.Contains(t, out, `"kind": "index_hit"`)
	assert.Contains(t, out, `"path": "/idx/report.pdf"`)
}

func TestQueryCmd_LimitTruncatesList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	services.Launcher = &fakeLauncher{
		set: domain.CombinedResultSet{
			Vertical: []domain.ResultItem{
				{Kind: domain.KindIndexHit, DisplayName: "one.txt"},
				{Kind: domain.KindIndexHit, DisplayName: "two.txt"},
				{Kind: domain.KindIndexHit, DisplayName: "three.txt"},
			},
		},
	}

	out, err := execute("query", "--limit", "2", "files")
	defer func() { queryLimit = 20 }()

	require.NoError(t, err)
	assert.Contains(t, out, "one.txt")
	assert.Contains(t, out, "two.txt")
	assert.NotContains(t, out, "three.txt")
}

func TestQueryCmd_IndexFailureDegradesToOtherSources(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// The daemon is down but file history still answered: the command
	// must print those results and warn, not abort.
	services.Launcher = &fakeLauncher{
		set: domain.CombinedResultSet{
			Query: "report",
			Vertical: []domain.ResultItem{
				{Kind: domain.KindFileHistory, DisplayName: "report.pdf", Path: "/home/u/report.pdf"},
			},
		},
		err: domain.ErrServiceUnavailable,
	}

	out, err := execute("query", "report")

	require.NoError(t, err)
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "Warning: Index service unavailable")
}

func TestQueryCmd_IndexFailureInJSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	services.Launcher = &fakeLauncher{
		set: domain.CombinedResultSet{
			Query: "report",
			Vertical: []domain.ResultItem{
				{Kind: domain.KindFileHistory, DisplayName: "report.pdf", Path: "/home/u/report.pdf"},
			},
		},
		err: domain.ErrTimeout,
	}

	out, err := execute("query", "--json", "report")
	defer func() { queryJSON = false }()

	require.NoError(t, err)
	assert.Contains(t, out, `"name": "report.pdf"`)
	assert.Contains(t, out, `"index_error": "Index search timed out"`)
}

package file

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/core/services"
	"github.com/lightbar-dev/lightbar/internal/logger"
)

// Config keys.
const (
	KeyIndexURL        = "index.url"
	KeyIndexEnabled    = "index.enabled"
	KeySizingTiers     = "search.sizing_tiers"
	KeySessionTimeout  = "search.session_timeout_ms"
	KeyFetchTimeout    = "search.fetch_timeout_ms"
	KeyHorizontalLimit = "search.horizontal_limit"
	KeyAppsDir         = "catalog.apps_dir"
	KeyDataDir         = "catalog.data_dir"
)

// LauncherConfig builds the launcher pipeline configuration from the
// config store. Absent or malformed keys fall back to the defaults.
func LauncherConfig(store driven.ConfigStore) services.Config {
	cfg := services.Config{
		Sizing:          sizingTable(store),
		HorizontalLimit: store.GetInt(KeyHorizontalLimit),
	}
	if ms := store.GetInt(KeySessionTimeout); ms > 0 {
		cfg.SessionTimeout = time.Duration(ms) * time.Millisecond
	}
	if ms := store.GetInt(KeyFetchTimeout); ms > 0 {
		cfg.FetchTimeout = time.Duration(ms) * time.Millisecond
	}
	return cfg
}

// sizingTable parses the configured length tiers. Each entry has the
// form "minLength:maxResults", e.g. ["1:40", "2:120", "3:400", "5:1000"].
func sizingTable(store driven.ConfigStore) domain.SizingTable {
	raw := store.GetStringSlice(KeySizingTiers)
	if len(raw) == 0 {
		return nil
	}

	table, err := ParseSizingTiers(raw)
	if err != nil {
		logger.Warn("Ignoring %s: %v", KeySizingTiers, err)
		return nil
	}
	return table
}

// ParseSizingTiers converts "minLength:maxResults" strings to a table.
func ParseSizingTiers(raw []string) (domain.SizingTable, error) {
	table := make(domain.SizingTable, 0, len(raw))
	for _, entry := range raw {
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed tier %q", entry)
		}
		minLen, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("malformed tier %q: %w", entry, err)
		}
		maxResults, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("malformed tier %q: %w", entry, err)
		}
		table = append(table, domain.SizingTier{MinLength: minLen, MaxResults: maxResults})
	}

	if !table.IsValid() {
		return nil, fmt.Errorf("tiers must be sorted by length with non-decreasing ceilings")
	}
	return table, nil
}

// IndexURL returns the configured findexd base URL, empty for default.
func IndexURL(store driven.ConfigStore) string {
	return store.GetString(KeyIndexURL)
}

// IndexEnabled reports whether the index branch should run at all.
// Defaults to true when the key is absent.
func IndexEnabled(store driven.ConfigStore) bool {
	if _, ok := store.Get(KeyIndexEnabled); !ok {
		return true
	}
	return store.GetBool(KeyIndexEnabled)
}

// AppsDir returns the configured applications directory, empty for the
// platform default.
func AppsDir(store driven.ConfigStore) string {
	return store.GetString(KeyAppsDir)
}

// DataDir returns the configured data directory, empty for the default.
func DataDir(store driven.ConfigStore) string {
	return store.GetString(KeyDataDir)
}

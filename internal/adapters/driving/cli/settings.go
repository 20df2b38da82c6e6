package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lightbar-dev/lightbar/internal/adapters/driven/config/file"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage launcher settings",
	Long: `View and change launcher settings.

Settings live in a TOML file and cover the index daemon endpoint,
search sizing, and catalog locations.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Long: `Set a configuration value by dot-notation key.

Known keys:
  ` + file.KeyIndexURL + `           - findexd base URL
  ` + file.KeyIndexEnabled + `       - enable the file-index source (true/false)
  ` + file.KeySessionTimeout + `     - session creation timeout in milliseconds
  ` + file.KeyFetchTimeout + `       - first-page fetch timeout in milliseconds
  ` + file.KeyHorizontalLimit + `    - quick-launch row size
  ` + file.KeyAppsDir + `            - .desktop files directory
  ` + file.KeyDataDir + `            - history and notes database directory`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Config == nil {
		return errors.New("config store not configured")
	}

	keys := []string{
		file.KeyIndexURL,
		file.KeyIndexEnabled,
		file.KeySizingTiers,
		file.KeySessionTimeout,
		file.KeyFetchTimeout,
		file.KeyHorizontalLimit,
		file.KeyAppsDir,
		file.KeyDataDir,
	}
	sort.Strings(keys)

	cmd.Println("Settings:")
	for _, key := range keys {
		value, ok := services.Config.Get(key)
		if !ok {
			cmd.Printf("  %-28s (default)\n", key)
			continue
		}
		cmd.Printf("  %-28s %v\n", key, value)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if services == nil || services.Config == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	if err := services.Config.Set(key, coerceValue(raw)); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Config == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(services.Config.Path())
	return nil
}

// coerceValue turns CLI strings into the natural TOML type: bools and
// integers stay typed, everything else stays a string.
func coerceValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}

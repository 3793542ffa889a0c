package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/autoimport/internal/config"
)

// Config command flags.
var (
	configGlobal bool
	configDir    string
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify autoimport defaults",
	Long: `View and modify autoimport defaults.

autoimport reads .autoimport.yaml in the project root. A global config at
~/.config/autoimport/config.yaml provides defaults. Project settings override
global settings, and command-line flags override both.

Keys: library, package_manager, skip_install, assume_yes, require_clean.

Note: config set does a YAML round-trip and will not preserve comments.`,
}

// configGetCmd prints the effective value of a key.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value. Without --global the project value is shown,
falling back to the global one.

Examples:
  autoimport config get library
  autoimport config get --global package_manager`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

By default, writes to .autoimport.yaml in the project directory.
Use --global to write to ~/.config/autoimport/config.yaml.

Examples:
  autoimport config set library element-plus
  autoimport config set skip_install true
  autoimport config set --global package_manager pnpm`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func init() {
	configCmd.PersistentFlags().StringVarP(&configDir, "path", "p", ".", "project directory")
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/autoimport/config.yaml)")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/autoimport/config.yaml)")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if configGlobal {
		cfg, err = config.LoadGlobal()
	} else {
		cfg, err = config.LoadEffective(configDir)
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, rawValue := args[0], args[1]

	targetPath := filepath.Join(configDir, config.FileName)
	if configGlobal {
		targetPath = config.GlobalConfigPath()
	}

	data, err := config.LoadRaw(targetPath)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := config.SetValue(data, key, rawValue); err != nil {
		return err
	}

	// Round-trip validate before writing.
	roundTrip, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	var validCfg config.Config
	if err := yaml.Unmarshal(roundTrip, &validCfg); err != nil {
		return fmt.Errorf("invalid config after set: %w", err)
	}
	if err := config.Validate(&validCfg); err != nil {
		return err
	}

	if err := config.WriteFile(targetPath, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, rawValue)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	projectCfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}

	globalMap, err := config.ToMap(globalCfg)
	if err != nil {
		return err
	}
	projectMap, err := config.ToMap(projectCfg)
	if err != nil {
		return err
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for k, v := range globalMap {
		seen[k] = entry{value: v, source: "global"}
	}
	for k, v := range projectMap {
		seen[k] = entry{value: v, source: "project"}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'autoimport config set <key> <value>' to store a default.")
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	globalColor := color.New(color.FgCyan)
	projectColor := color.New(color.FgGreen)
	for _, k := range keys {
		e := seen[k]
		label := globalColor.Sprint("(global)")
		if e.source == "project" {
			label = projectColor.Sprint("(project)")
		}
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, label)
	}
	return nil
}

// resetConfigFlags resets config command flags for testing.
func resetConfigFlags() {
	configGlobal = false
	configDir = "."
	for _, c := range []*cobra.Command{configGetCmd, configSetCmd} {
		if f := c.Flags().Lookup("global"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
	if f := configCmd.PersistentFlags().Lookup("path"); f != nil {
		_ = f.Value.Set(".")
		f.Changed = false
	}
}

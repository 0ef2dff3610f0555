package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/when/internal/config"
	"github.com/aidanlsb/when/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the when configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := getConfigPath()
		created, err := config.CreateDefault(path)
		if err != nil {
			return handleError(ErrConfigWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"path": path, "created": created}, nil)
			return nil
		}
		if created {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Created %s", path))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warningf("Config already exists at %s", path))
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := getConfigPath()
		if isJSONOutput() {
			outputSuccess(map[string]string{"path": path}, nil)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the loaded configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":     getConfigPath(),
				"match":    matchMode.String(),
				"timezone": location.String(),
				"accent":   c.UI.Accent,
				"log":      c.Log.Level,
			}, nil)
			return nil
		}

		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return handleError(ErrInternal, fmt.Errorf("failed to encode config: %w", err), "")
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Hint("# "+getConfigPath()))
		fmt.Fprint(out, buf.String())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save the file",
	Long: fmt.Sprintf(`Sets a dotted config key and rewrites the config file.

Keys: %s

Examples:
  when config set resolve.match word
  when config set resolve.timezone Europe/Berlin`, strings.Join(config.Keys(), ", ")),
	Args: requireArgs(2, "key and value"),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		if err := c.Set(args[0], args[1]); err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		path := getConfigPath()
		if err := config.SaveTo(path, c); err != nil {
			return handleError(ErrConfigWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"path": path, "key": args[0], "value": strings.TrimSpace(args[1])}, nil)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Set %s = %s", args[0], strings.TrimSpace(args[1])))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configPathCmd, configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

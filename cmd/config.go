package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/floatmenu/internal/config"
	"github.com/marcus/floatmenu/internal/output"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Show or change menu settings",
	Long:    `Read and write .floatmenu/config.json in the current directory. FLOATMENU_* environment variables override the file.`,
	GroupID: "system",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		out := cmd.OutOrStdout()
		for _, key := range config.Keys() {
			val, _ := cfg.Get(key)
			fmt.Fprintf(out, "%s = %s\n", key, val)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		val, err := cfg.Get(args[0])
		if err != nil {
			return unknownKey(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), val)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetValue(getBaseDir(), args[0], args[1]); err != nil {
			return unknownKey(err)
		}
		output.Success("SET %s = %s", args[0], args[1])
		return nil
	},
}

func unknownKey(err error) error {
	if errors.Is(err, config.ErrUnknownKey) {
		output.Error("%v (valid keys: %s)", err, strings.Join(config.Keys(), ", "))
	} else {
		output.Error("%v", err)
	}
	return err
}

func init() {
	configCmd.AddCommand(configShowCmd, configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

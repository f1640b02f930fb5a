package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"

	"github.com/machineuid/machineuid"
)

const envPrefix = "MACHINEUID"

var (
	configFile string
	jsonOutput bool
	debugMode  bool
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	Use:          "machineuid",
	Short:        "Print the OS-native machine identifier",
	Long: `Print the machine identifier assigned by the operating system, read
without elevated privileges from the platform source (machine-id file,
IOPlatformUUID, MachineGuid registry value, hostid, ...).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
		}

		// Update global variables from viper (config file or environment
		// values when not set via CLI)
		loadBoolFromConfig(cmd, "json", "json", &jsonOutput)
		loadBoolFromConfig(cmd, "debug", "debug", &debugMode)
		loadDurationFromConfig(cmd, "timeout", "timeout", &timeout)

		return nil
	},
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, _ []string) error {
	resolver := machineuid.New().WithTimeout(timeout)
	if debugMode {
		resolver.WithLogger(newLogger(true))
	}

	id, err := resolver.ID(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd, map[string]any{
			"id":       id,
			"platform": runtime.GOOS,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)

	return nil
}

// Execute parses the command line and runs the selected command, canceling
// helper commands on interrupt.
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		defer signal.Stop(sigs)
		select {
		case <-ctx.Done():
		case <-sigs:
			cancel()
		}
	}()

	return rootCmd.ExecuteContext(ctx)
}

func rootCmdInit() {
	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&configFile, "config", "", "Path to configuration file (YAML or TOML)")
	pflags.BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	pflags.BoolVar(&debugMode, "debug", false, "Enable debug logging of the resolution steps")
	pflags.DurationVar(&timeout, "timeout", 5*time.Second, "Timeout for helper commands, 0 disables")

	bindFlags(pflags, "json", "debug", "timeout")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
}

// bindFlags binds the named flags to viper so config file and MACHINEUID_*
// environment values apply when the flag is not set on the command line.
func bindFlags(pflags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := viper.BindPFlag(name, pflags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func loadBoolFromConfig(cmd *cobra.Command, flagName, viperKey string, target *bool) {
	if !cmd.Flags().Changed(flagName) && viper.IsSet(viperKey) {
		*target = viper.GetBool(viperKey)
	}
}

func loadDurationFromConfig(cmd *cobra.Command, flagName, viperKey string, target *time.Duration) {
	if !cmd.Flags().Changed(flagName) && viper.IsSet(viperKey) {
		*target = viper.GetDuration(viperKey)
	}
}

// newLogger builds a devlog-backed slog logger writing to stderr.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(devlog.NewHandler(os.Stderr, &devlog.Options{Level: level}))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func init() {
	rootCmdInit()
}

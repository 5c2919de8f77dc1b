// Package main is the entry point for the creativectl CLI. It drives the
// same catalog, provider registry and renderers as the API server, reading
// calendar items and brand vaults from YAML files and writing the results
// to an output directory.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"creativestudio/internal/ai"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the creativectl CLI.
var rootCmd = &cobra.Command{
	Use:   "creativectl",
	Short: "Render brand creatives and production prompts from calendar items",
	Long: `creativectl renders on-brand visual creatives and compiles production
prompts for content-calendar items without running the API server.

Items and brand vaults are YAML files. Provider credentials come from the
config file (credentials.<name>) or from the environment, e.g. GEMINI_API_KEY.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./creativectl.yaml or ~/.config/creativectl/config.yaml)")
	rootCmd.PersistentFlags().String("vaults", "", "brand vaults YAML file")
	rootCmd.PersistentFlags().String("out", "out", "output directory for rendered files")
	rootCmd.PersistentFlags().Bool("json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")

	viper.BindPFlag("vaults", rootCmd.PersistentFlags().Lookup("vaults"))
	viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("creativectl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "creativectl"))
		}
	}

	viper.SetEnvPrefix("CREATIVECTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// credentials resolves provider credentials from the config file first,
// then from the plain environment variable of the same name.
func credentials() ai.CredentialSource {
	return ai.CredentialFunc(func(name string) string {
		if v := strings.TrimSpace(viper.GetString("credentials." + strings.ToLower(name))); v != "" {
			return v
		}
		return strings.TrimSpace(os.Getenv(name))
	})
}

// newRegistry builds the provider registry over the CLI's credentials.
func newRegistry() *ai.Registry {
	return ai.NewRegistry(credentials())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

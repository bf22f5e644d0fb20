package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage esper-thesis configuration",
	Long: `Manage configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (ESPER_THESIS_*, ESPER_THESIS_DB)
3. Config file (~/.esper-thesis/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration and database resolution",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := model.DefaultConfig()
		cfg.Database.Path = viper.GetString("database.path")
		cfg.Database.Projects = viper.GetStringMapString("database.projects")
		cfg.Database.CacheTTL = viper.GetDuration("database.cache_ttl")
		cfg.Batch.Workers = viper.GetInt("batch.workers")
		cfg.Output.Verbose = viper.GetBool("output.verbose")
		cfg.Output.IncludeFooter = viper.GetBool("output.include_footer")

		if configFile := viper.ConfigFileUsed(); configFile != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		fmt.Print(string(yamlData))

		path, err := resolveDatabase()
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println("Database resolution order:")
		fmt.Println("  1. CLI flag:        --database <path>")
		fmt.Println("  2. Environment var: ESPER_THESIS_DB")
		fmt.Println("  3. Config file:     database.path / database.projects")
		fmt.Printf("  4. Default:         %s\n", model.DefaultDatabase)
		fmt.Printf("\nResolved database: %s\n", path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configDir := home + "/.esper-thesis"
		configPath := configDir + "/config.yaml"

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s", configPath)
		}
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}

		yamlData, err := yaml.Marshal(model.DefaultConfig())
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		header := "# esper-thesis configuration\n" +
			"#\n" +
			"# Hierarchy (highest to lowest priority):\n" +
			"#   1. CLI flags\n" +
			"#   2. Environment variables (ESPER_THESIS_*)\n" +
			"#   3. This file\n" +
			"#   4. Built-in defaults\n\n"

		if err := os.WriteFile(configPath, append([]byte(header), yamlData...), 0o644); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}

		fmt.Printf("✓ Created default configuration: %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

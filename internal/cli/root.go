// Package cli wires the cobra command tree. Everything here is I/O plumbing:
// argument parsing, database path resolution, and report writing. Decision
// logic lives in the assess, route, and encode packages.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
	"github.com/PaniclandUSA/Esper-Thesis/internal/pipeline"
	"github.com/PaniclandUSA/Esper-Thesis/internal/store"
)

const version = "1.0.0"

var (
	cfgFile  string
	database string
	project  string
	verbose  bool

	logger *zap.SugaredLogger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "esper-thesis",
	Short: "Research triage: score, classify, and route research submissions",
	Long: `esper-thesis ingests short research submissions (title, abstract,
findings, category) and produces scored, classified, uniquely-identified
records.

Each submission is evaluated along five independent dimensions (coherence,
evidence, originality, significance, linkage), connected to prior records by
keyword overlap, routed through a fixed priority rule list, and stamped with
deterministic fingerprints. Scoring is lexical and transparent; there is no
language model behind it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("esper-thesis v" + version)
	},
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.esper-thesis/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&database, "database", "", "corpus database path (overrides env and config)")
	rootCmd.PersistentFlags().StringVar(&project, "project", "", "named project from the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.esper-thesis")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match ESPER_THESIS_*
	viper.SetEnvPrefix("ESPER_THESIS")
	viper.AutomaticEnv()

	defaults := model.DefaultConfig()
	viper.SetDefault("database.path", defaults.Database.Path)
	viper.SetDefault("database.cache_ttl", defaults.Database.CacheTTL)
	viper.SetDefault("batch.workers", defaults.Batch.Workers)
	viper.SetDefault("output.include_footer", defaults.Output.IncludeFooter)

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func initLogger() {
	var base *zap.Logger
	var err error
	if verbose {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		base = zap.NewNop()
	}
	logger = base.Sugar()
}

// resolveDatabase applies the path cascade: --database flag, ESPER_THESIS_DB
// environment variable, config-file project entry or default path, then
// ./research_db.json.
func resolveDatabase() (string, error) {
	if database != "" {
		return database, nil
	}
	if env := os.Getenv("ESPER_THESIS_DB"); env != "" {
		return env, nil
	}

	if project != "" {
		projects := viper.GetStringMapString("database.projects")
		path, ok := projects[project]
		if !ok {
			return "", fmt.Errorf("project %q not found in config (known: %d projects)", project, len(projects))
		}
		return path, nil
	}

	if path := viper.GetString("database.path"); path != "" {
		return path, nil
	}
	return model.DefaultDatabase, nil
}

// newEngine builds the engine over the resolved corpus path.
func newEngine() (*pipeline.Engine, *store.FileStore, error) {
	path, err := resolveDatabase()
	if err != nil {
		return nil, nil, err
	}

	fileStore := store.NewFileStore(path, viper.GetDuration("database.cache_ttl"))
	engine := pipeline.New(fileStore, pipeline.WithLogger(logger))
	return engine, fileStore, nil
}

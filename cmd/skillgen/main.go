package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillgen/pkg/catalog"
	"github.com/jingkaihe/skillgen/pkg/generator"
	"github.com/jingkaihe/skillgen/pkg/logger"
	"github.com/jingkaihe/skillgen/pkg/materialize"
	"github.com/jingkaihe/skillgen/pkg/patch"
	"github.com/jingkaihe/skillgen/pkg/pipeline"
	"github.com/jingkaihe/skillgen/pkg/presenter"
	"github.com/jingkaihe/skillgen/pkg/verify"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLGEN")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillgen")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

// GenerateConfig holds the pipeline configuration resolved from flags
type GenerateConfig struct {
	Root         string
	Dialect      string
	Catalog      string
	Generator    string
	SkipGenerate bool
	CommonFirst  bool
}

// NewGenerateConfig returns a GenerateConfig with defaults
func NewGenerateConfig() *GenerateConfig {
	return &GenerateConfig{
		Root:      ".",
		Dialect:   "sh",
		Generator: "specify",
	}
}

var rootCmd = &cobra.Command{
	Use:   "skillgen",
	Short: "Generate distributable agent skills from spec-kit output",
	Long: `Skillgen runs the external spec-kit generator, copies each skill's files
into a fresh skills/ tree, patches out generator-internal paths and template
placeholders, and verifies that no forbidden residue remains.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getGenerateConfigFromFlags(cmd)
		runGenerate(cmd, config)
	},
}

func getGenerateConfigFromFlags(cmd *cobra.Command) *GenerateConfig {
	config := NewGenerateConfig()
	if root, err := cmd.Flags().GetString("root"); err == nil {
		config.Root = root
	}
	if dialect, err := cmd.Flags().GetString("dialect"); err == nil {
		config.Dialect = dialect
	}
	if catalogPath, err := cmd.Flags().GetString("catalog"); err == nil {
		config.Catalog = catalogPath
	}
	if bin, err := cmd.Flags().GetString("generator"); err == nil {
		config.Generator = bin
	}
	if skip, err := cmd.Flags().GetBool("skip-generate"); err == nil {
		config.SkipGenerate = skip
	}
	if commonFirst, err := cmd.Flags().GetBool("common-first"); err == nil {
		config.CommonFirst = commonFirst
	}
	return config
}

func runGenerate(cmd *cobra.Command, config *GenerateConfig) {
	ctx := cmd.Context()

	cat := catalog.Default()
	if config.Catalog != "" {
		loaded, err := catalog.Load(config.Catalog)
		if err != nil {
			presenter.Error(err, "Failed to load catalog")
			os.Exit(1)
		}
		cat = loaded
	}

	var engineOpts []patch.Option
	if config.CommonFirst {
		engineOpts = append(engineOpts, patch.WithPrecedence(patch.CommonFirst))
	}
	engine := patch.NewEngine(patch.DefaultTables(config.Dialect), engineOpts...)

	paths := materialize.NewPaths(config.Root, config.Dialect)

	var gen generator.Generator
	if !config.SkipGenerate {
		gen = generator.NewSpecifyRunner(config.Root, config.Dialect,
			generator.WithBinary(config.Generator))
	}

	p := pipeline.New(gen, materialize.New(paths, cat, engine), verify.NewVerifier(), paths.OutputDir)

	result, err := p.Run(ctx)
	if err != nil {
		presenter.Error(err, "Pipeline failed")
		os.Exit(1)
	}

	printSummary(result, paths.OutputDir)
}

func printSummary(result *materialize.Result, outputDir string) {
	presenter.Section("Summary")

	generated := 0
	for _, skill := range result.Skills {
		if skill.Skipped {
			presenter.Warning(fmt.Sprintf("%s/ skipped (skill document not found)", skill.Name))
			continue
		}
		generated++

		var parts []string
		if skill.References > 0 {
			parts = append(parts, fmt.Sprintf("%d refs", skill.References))
		}
		if skill.Scripts > 0 {
			parts = append(parts, fmt.Sprintf("%d scripts", skill.Scripts))
		}
		extra := ""
		if len(parts) > 0 {
			extra = fmt.Sprintf(" (%s)", strings.Join(parts, ", "))
		}
		presenter.Info(fmt.Sprintf("  %s/%s", skill.Name, extra))
	}

	presenter.Success(fmt.Sprintf("Generated %d skills in %s", generated, outputDir))
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-error output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.Flags().String("root", ".", "Repository root the generator runs in")
	rootCmd.Flags().String("dialect", "sh", "Script dialect the generator is asked for")
	rootCmd.Flags().String("catalog", "", "Path to a YAML catalog override")
	rootCmd.Flags().String("generator", "specify", "Generator binary to invoke")
	rootCmd.Flags().Bool("skip-generate", false, "Reuse existing generator output instead of regenerating")
	rootCmd.Flags().Bool("common-first", false, "Apply common patch rules before skill-specific ones (historical ordering)")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning(fmt.Sprintf("Invalid log level: %v", err))
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		presenter.SetQuiet(viper.GetBool("quiet"))
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

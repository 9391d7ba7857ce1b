package main

import (
	"fmt"
	"os"

	"github.com/dorgan-csgroup/SafeScale/config"
	"github.com/dorgan-csgroup/SafeScale/internal/catalog"
	"github.com/dorgan-csgroup/SafeScale/internal/checker"
	"github.com/dorgan-csgroup/SafeScale/internal/converter"
	"github.com/dorgan-csgroup/SafeScale/pkg/serialize"
	"github.com/spf13/cobra"

	_ "github.com/dorgan-csgroup/SafeScale/pkg/models"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	path       string
	output     string
	configPath string
)

var root = &cobra.Command{
	Use:   "safegate",
	Short: "Model tooling for the SafeScale REST gateway",
}

var check = &cobra.Command{
	Use:   "check",
	Short: "Check that the documents from directory decode into their models",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		setupLog(cfg.Log.Level)

		documents, err := catalog.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load documents: %w", err)
		}

		report, err := checker.New(checker.Config{Concurrency: cfg.Concurrency}).Run(cmd.Context(), documents)
		if err != nil {
			return fmt.Errorf("failed to check documents: %w", err)
		}

		content, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}

		fmt.Print(string(content))

		if report.Failed > 0 {
			return fmt.Errorf("%d of %d %w", report.Failed, report.Checked, checker.ErrFailedDocuments)
		}

		return nil
	},
}

var convert = &cobra.Command{
	Use:   "convert",
	Short: "Rewrite the documents from directory in their canonical wire form",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		setupLog(cfg.Log.Level)

		documents, err := catalog.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load documents: %w", err)
		}

		paths, err := converter.New(converter.Config{Directory: output, Format: cfg.Format}).Run(cmd.Context(), documents)
		if err != nil {
			return fmt.Errorf("failed to convert documents: %w", err)
		}

		for _, path := range paths {
			fmt.Println(path)
		}

		return nil
	},
}

var kinds = &cobra.Command{
	Use:   "kinds",
	Short: "List the registered model kinds",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		for _, kind := range serialize.ModelTypeRegistry.Kinds() {
			fmt.Println(kind)
		}

		return nil
	},
}

func setupLog(level string) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat:        "2006-01-02 15:04:05",
		FullTimestamp:          true,
		DisableLevelTruncation: true,
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	log.SetLevel(lvl)
}

func init() {
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to directory with safegate.yaml")

	check.Flags().StringVar(&path, "path", "", "Path to documents directory")
	check.MarkFlagRequired("path")

	convert.Flags().StringVar(&path, "path", "", "Path to documents directory")
	convert.Flags().StringVar(&output, "output", "", "Path to output directory")
	convert.MarkFlagRequired("path")
	convert.MarkFlagRequired("output")

	root.AddCommand(check, convert, kinds)
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cbegin/stan-go/internal/config"
	"github.com/cbegin/stan-go/internal/lilypond"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "stan",
	Short:         "Parse and check LilyPond-style rhythm notation",
	Long:          "stan parses rests, notes, chords, beams and tuplets into a validated tree with exact rational durations.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .stan.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".stan")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()

	// It's fine if no config file is found; we use defaults.
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		log.Printf("using config %s", viper.ConfigFileUsed())
	}
}

// loadParser reads the configuration and builds the parser it describes.
func loadParser() (config.Config, *lilypond.Parser, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	p, err := lilypond.NewParser(lilypond.ParserConfig{
		DefaultOctave: cfg.Parser.DefaultOctave,
		Tuplets:       cfg.Parser.Tuplets,
	})
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, p, nil
}

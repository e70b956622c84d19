package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cbegin/stan-go/internal/config"
	"github.com/cbegin/stan-go/internal/notation"
	"github.com/cbegin/stan-go/internal/render"
	"github.com/cbegin/stan-go/internal/timeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse [notation...]",
	Short: "Parse notation and print the result",
	Long: `Parse each argument as one column and print its rendering and duration.
With --file the whole file is parsed as one column; "-" reads stdin.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringP("file", "f", "", "parse the contents of a file")
	parseCmd.Flags().String("format", "", "output format: debug|lily")
	parseCmd.Flags().Bool("events", false, "print the flattened timeline")
	_ = viper.BindPFlag("output.format", parseCmd.Flags().Lookup("format"))
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, p, err := loadParser()
	if err != nil {
		return err
	}
	showEvents, _ := cmd.Flags().GetBool("events")

	inputs := args
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		text, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		inputs = []string{text}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("nothing to parse: pass notation arguments or --file")
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, in := range inputs {
		col, err := p.Parse(in)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", strings.TrimSpace(in), err)
			continue
		}
		if err := printColumn(out, col, cfg.Output.Format, p.Config().DefaultOctave, showEvents); err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", strings.TrimSpace(in), err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func printColumn(w io.Writer, col notation.Column, format string, defaultOctave int, showEvents bool) error {
	text := render.Column(col)
	if format == config.FormatLily {
		text = render.LilyOctave(col, defaultOctave)
	}
	fmt.Fprintf(w, "%s\tduration %s\n", text, notation.DurationOf(col))
	if !showEvents {
		return nil
	}
	tl, err := timeline.New(col)
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}
	for _, ev := range tl.Events() {
		fmt.Fprintf(w, "  %s\n", ev)
	}
	return nil
}

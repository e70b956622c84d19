package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbegin/stan-go/internal/manifest"
)

var checkCmd = &cobra.Command{
	Use:   "check SUITE.toml...",
	Short: "Run conformance suites",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, p, err := loadParser()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		suite, err := manifest.Load(path)
		if err != nil {
			return err
		}
		rep := suite.Run(p)
		for _, res := range rep.Results {
			if res.Passed() {
				fmt.Fprintf(out, "PASS %s\n", res.Name)
				continue
			}
			fmt.Fprintf(out, "FAIL %s\n", res.Name)
			for _, f := range res.Failures {
				fmt.Fprintf(out, "     %s\n", f)
			}
		}
		fmt.Fprintf(out, "%s: %d passed, %d failed\n", path, rep.Passed(), rep.Failed())
		failed += rep.Failed()
	}
	if failed > 0 {
		return fmt.Errorf("%d case(s) failed", failed)
	}
	return nil
}

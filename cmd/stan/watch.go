package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cbegin/stan-go/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-parse a file whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", 0, "quiet period before re-parsing (default from config)")
	watchCmd.Flags().Bool("events", false, "print the flattened timeline")
	_ = viper.BindPFlag("watch.debounce", watchCmd.Flags().Lookup("debounce"))
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, p, err := loadParser()
	if err != nil {
		return err
	}
	showEvents, _ := cmd.Flags().GetBool("events")

	w, err := watch.New(args[0], p, watch.WithDebounce(cfg.Watch.Debounce), watch.WithLogger(log.Default()))
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	out := cmd.OutOrStdout()
	for {
		select {
		case res, ok := <-w.Results:
			if !ok {
				return nil
			}
			stamp := res.At.Format("15:04:05")
			if res.Err != nil {
				fmt.Fprintf(out, "[%s] error: %v\n", stamp, res.Err)
				continue
			}
			fmt.Fprintf(out, "[%s] ", stamp)
			if err := printColumn(out, res.Column, cfg.Output.Format, p.Config().DefaultOctave, showEvents); err != nil {
				fmt.Fprintf(out, "[%s] error: %v\n", stamp, err)
			}
		case <-sig:
			return nil
		}
	}
}

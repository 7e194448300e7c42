/*
Copyright © 2025 cfinspect authors
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"cfinspect/function/chlpage"
	"cfinspect/function/log"
	"github.com/spf13/cobra"
)

var grepFlag struct {
	stepsFile string
	watch     bool
}

// grepCmd represents the grep command
var grepCmd = &cobra.Command{
	Use:   "grep [file]",
	Short: "Hunt for the cH property in a saved challenge page",
	Long: `Runs a fixed sequence of pattern searches against the saved page, from the
most specific cH assignment form down to a raw dump of the first script block.
Every section is printed even when it matches nothing, so absent output is
itself a diagnostic.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := pageArg(args)
		steps := chlpage.DefaultSteps()
		if grepFlag.stepsFile != "" {
			extra, err := chlpage.LoadSteps(grepFlag.stepsFile)
			if err != nil {
				log.Fatal(err)
			}
			steps = append(steps, extra...)
		}
		pipeline := chlpage.New(path, os.Stdout)
		pipeline.Run(steps)
		if !grepFlag.watch {
			return
		}
		log.Info("watching %s for changes", path)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := chlpage.Watch(ctx, path, 500*time.Millisecond, func() {
			pipeline.Run(steps)
		})
		if err != nil && ctx.Err() == nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(grepCmd)
	grepCmd.Flags().StringVar(&grepFlag.stepsFile, "steps", "", "YAML file with extra pattern steps")
	grepCmd.Flags().BoolVar(&grepFlag.watch, "watch", false, "re-run the pipeline when the file changes")
}

/*
Copyright © 2025 cfinspect authors
*/
package cmd

import (
	"os"

	"cfinspect/function/chlpage"
	"cfinspect/function/log"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cfinspect",
	Short: "Diagnostics for Cloudflare challenge pages saved to disk.",
	Long: `cfinspect inspects anti-automation challenge interstitials. Save a page with
the fetch subcommand (or any browser), then grep it for the cH property, parse
the embedded window._cf_chl_opt object, classify the challenge type, or list
its script blocks.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable debug mode if flag is set
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add debug flag to root command
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}

// pageArg returns the file argument or the default saved-page name.
func pageArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return chlpage.DefaultFile
}

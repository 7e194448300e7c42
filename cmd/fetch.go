/*
Copyright © 2025 cfinspect authors
*/
package cmd

import (
	"cfinspect/function/chlpage"
	"cfinspect/function/fetcher"
	"cfinspect/function/log"
	"github.com/spf13/cobra"
)

var fetchFlag struct {
	output string
}

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a page to disk for offline inspection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		page, err := fetcher.New(debug).Save(args[0], fetchFlag.output)
		if err != nil {
			log.Fatal(err)
		}
		log.Info("saved %s (%d bytes) to %s", page.URL, len(page.Body), fetchFlag.output)
		log.InfoH2("status: %d, server: %s", page.StatusCode, page.Server)
		log.InfoH2("challenge: %s", page.Challenge)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVarP(&fetchFlag.output, "output", "o", chlpage.DefaultFile, "output file")
}

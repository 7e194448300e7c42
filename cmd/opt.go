/*
Copyright © 2025 cfinspect authors
*/
package cmd

import (
	"fmt"
	"os"

	"cfinspect/function/chlopt"
	"cfinspect/function/log"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

func init() {
	optCmd := &cobra.Command{
		Use:   "opt [file]",
		Short: "Parse the window._cf_chl_opt object into structured form",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := os.ReadFile(pageArg(args))
			if err != nil {
				log.Fatal(err)
			}
			opt, err := chlopt.FromHTML(string(raw))
			if err != nil {
				log.Fatal(err)
			}
			data, _ := prettyjson.Marshal(opt)
			fmt.Println(string(data))
		},
	}
	rootCmd.AddCommand(optCmd)
}

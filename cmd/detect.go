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

func init() {
	detectCmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Classify a saved page as js challenge, captcha, or none",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body, err := os.ReadFile(pageArg(args))
			if err != nil {
				log.Fatal(err)
			}
			challenge, markers := chlpage.Detect(body)
			log.Info("challenge: %s", challenge)
			for _, m := range markers {
				log.InfoH2("marker: %s", m)
			}
		},
	}
	rootCmd.AddCommand(detectCmd)
}

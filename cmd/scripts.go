/*
Copyright © 2025 cfinspect authors
*/
package cmd

import (
	"fmt"
	"os"

	"cfinspect/function/chlpage"
	"cfinspect/function/log"
	"github.com/spf13/cobra"
)

var scriptsFlag struct {
	dump  bool
	limit int
}

// scriptsCmd represents the scripts command
var scriptsCmd = &cobra.Command{
	Use:   "scripts [file]",
	Short: "Enumerate script elements in a saved page",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, err := os.Open(pageArg(args))
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		scripts, err := chlpage.Scripts(file)
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range scripts {
			if s.Src != "" {
				log.Info("script[%d] src=%s", s.Index, s.Src)
				continue
			}
			log.Info("script[%d] inline (%d bytes)", s.Index, len(s.Inline))
			if scriptsFlag.dump {
				content := s.Inline
				if scriptsFlag.limit > 0 && len(content) > scriptsFlag.limit {
					content = content[:scriptsFlag.limit]
				}
				fmt.Println(content)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
	scriptsCmd.Flags().BoolVar(&scriptsFlag.dump, "dump", false, "print inline script contents")
	scriptsCmd.Flags().IntVar(&scriptsFlag.limit, "limit", 2000, "max characters dumped per script (0 = no limit)")
}

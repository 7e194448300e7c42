/*
Copyright © 2025 cfinspect authors
*/
package cmd

import (
	"cfinspect/function/addons"
	"cfinspect/function/log"
	"github.com/lqqyt2423/go-mitmproxy/proxy"
	"github.com/lqqyt2423/go-mitmproxy/web"
	"github.com/spf13/cobra"
)

var proxyFlag struct {
	proxyAddr string
	web       bool
	webAddr   string
	saveDir   string
}

// proxyCmd represents the proxy command
var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Intercept traffic and flag challenge interstitials",
	Long: `Runs a mitm proxy that classifies every HTML response passing through it.
Challenge pages are logged and, with --save-dir, written to disk so they can
be fed to the grep and opt subcommands.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := &proxy.Options{
			Addr:              proxyFlag.proxyAddr,
			StreamLargeBodies: 1024 * 1024 * 5,
			SslInsecure:       true,
		}
		p, err := proxy.NewProxy(opts)
		if err != nil {
			log.Fatal(err)
		}

		if proxyFlag.web {
			p.AddAddon(web.NewWebAddon(proxyFlag.webAddr))
		}

		p.AddAddon(addons.NewChallengeDetector(proxyFlag.saveDir))

		if err := p.Start(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(proxyCmd)
	proxyCmd.Flags().StringVarP(&proxyFlag.proxyAddr, "addr", "p", ":8080", "define address to use")
	proxyCmd.Flags().BoolVar(&proxyFlag.web, "web", false, "activate web interface")
	proxyCmd.Flags().StringVar(&proxyFlag.webAddr, "web-addr", ":8000", "set web interface address")
	proxyCmd.Flags().StringVar(&proxyFlag.saveDir, "save-dir", "", "save challenge page bodies to this directory")
}

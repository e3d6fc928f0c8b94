// wnedit is a command-line front end for editing WordNet-style lexicons:
// create new ones, import exchange-format files into a SQLite store, and
// export stored lexicons back out.
package main

import (
	"github.com/spf13/cobra"

	"github.com/bond-lab/wn-edit/pkg/config"
)

var (
	cfgFile string
	dbFlag  string
	cfg     *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wnedit",
		Short: "Edit WordNet-style lexicons",
		Long: `wnedit edits WordNet-style lexical resources.

Lexicons are held in a SQLite database and exchanged as WN-LMF XML.
Defaults for new lexicons come from wnedit.yaml or WNEDIT_* environment
variables; flags override both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			if dbFlag != "" {
				cfg.Database = dbFlag
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (default wnedit.yaml)")
	root.PersistentFlags().StringVar(&dbFlag, "db", "", "path to the SQLite database")

	root.AddCommand(newNewCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newStatsCmd())
	return root
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bond-lab/wn-edit/pkg/editor"
	"github.com/bond-lab/wn-edit/pkg/store"
)

func newImportCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a WN-LMF file into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := editor.LoadFromFile(args[0], editor.Options{})
			if err != nil {
				return err
			}

			if check {
				for _, p := range ed.Check() {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s %s: %s\n", p.Kind, p.ID, p.Message)
				}
			}

			st, err := store.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Commit(ed.Snapshot()); err != nil {
				return err
			}

			stats := ed.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s (%d synsets, %d entries, %d senses)\n",
				ed.Lexicon().ID, cfg.Database, stats.Synsets, stats.Entries, stats.Senses)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", true, "report structural problems before committing")
	return cmd
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bond-lab/wn-edit/pkg/editor"
	"github.com/bond-lab/wn-edit/pkg/store"
)

func newStatsCmd() *cobra.Command {
	var lexicon string

	cmd := &cobra.Command{
		Use:   "stats [FILE]",
		Short: "Print record counts for a lexicon file or stored lexicon",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ed *editor.Editor
			var err error
			switch {
			case len(args) == 1:
				ed, err = editor.LoadFromFile(args[0], editor.Options{})
			case lexicon != "":
				var st *store.Store
				st, err = store.Open(cfg.Database)
				if err != nil {
					return err
				}
				defer st.Close()
				resource, loadErr := st.LoadResource(lexicon)
				if loadErr != nil {
					return loadErr
				}
				ed, err = editor.FromResource(resource, editor.Options{})
			default:
				return errors.New("pass a FILE argument or --lexicon")
			}
			if err != nil {
				return err
			}

			stats := ed.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "Lexicon:  %s (%s)\n", ed.Lexicon().ID, ed.Lexicon().Label)
			fmt.Fprintf(cmd.OutOrStdout(), "Synsets:  %d\n", stats.Synsets)
			fmt.Fprintf(cmd.OutOrStdout(), "Entries:  %d\n", stats.Entries)
			fmt.Fprintf(cmd.OutOrStdout(), "Senses:   %d\n", stats.Senses)
			return nil
		},
	}

	cmd.Flags().StringVar(&lexicon, "lexicon", "", "stored lexicon id")
	return cmd
}

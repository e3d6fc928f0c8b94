package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bond-lab/wn-edit/pkg/editor"
	"github.com/bond-lab/wn-edit/pkg/store"
)

func newExportCmd() *cobra.Command {
	var lexicon, out, lmfVersion string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a stored lexicon as WN-LMF (stdout by default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer st.Close()

			res, err := st.LoadResource(lexicon)
			if err != nil {
				return err
			}
			ed, err := editor.FromResource(res, editor.Options{LMFVersion: lmfVersion})
			if err != nil {
				return err
			}

			if out == "" {
				return ed.Export(os.Stdout)
			}
			return ed.ExportFile(out)
		},
	}

	cmd.Flags().StringVar(&lexicon, "lexicon", "", "lexicon id (required)")
	cmd.Flags().StringVar(&out, "out", "", "output file")
	cmd.Flags().StringVar(&lmfVersion, "lmf-version", "", "WN-LMF schema version for export")
	cmd.MarkFlagRequired("lexicon")
	return cmd
}

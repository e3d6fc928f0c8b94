package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bond-lab/wn-edit/pkg/editor"
)

func newNewCmd() *cobra.Command {
	var (
		id, label, language, email, license string
		version, lmfVersion, out            string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new empty lexicon and export it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := editor.Options{
				ID:         id,
				Label:      label,
				Language:   firstNonEmpty(language, cfg.Lexicon.Language),
				Email:      firstNonEmpty(email, cfg.Lexicon.Email),
				License:    firstNonEmpty(license, cfg.Lexicon.License),
				Version:    firstNonEmpty(version, cfg.Lexicon.Version),
				LMFVersion: firstNonEmpty(lmfVersion, cfg.Lexicon.LMFVersion),
			}
			ed, err := editor.New(opts)
			if err != nil {
				return err
			}
			if out == "" {
				out = id + ".xml"
			}
			if err := ed.ExportFile(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created lexicon %s in %s\n", id, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "lexicon id (required)")
	cmd.Flags().StringVar(&label, "label", "", "human-readable label")
	cmd.Flags().StringVar(&language, "language", "", "BCP-47 language tag")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&license, "license", "", "license URL")
	cmd.Flags().StringVar(&version, "version", "", "lexicon version")
	cmd.Flags().StringVar(&lmfVersion, "lmf-version", "", "WN-LMF schema version for export")
	cmd.Flags().StringVar(&out, "out", "", "output file (default <id>.xml)")
	cmd.MarkFlagRequired("id")
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

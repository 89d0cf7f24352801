package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"herdcore/internal/config"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a dataset and report every violation",
		Long: `validate loads a YAML dataset, runs the reference-integrity, unique-id,
and date rules, and prints every violation. It exits non-zero when any
violation is found, so it can gate hand-edited datasets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			path := opts.dataPath
			if path == "" {
				path = cfg.Dataset
			}

			_, res, err := loadDataset(path)
			if err != nil {
				return err
			}
			if len(res.Violations) == 0 {
				cmd.Println("dataset is clean")
				return nil
			}
			for _, v := range res.Violations {
				cmd.Printf("%s  %s/%s  [%s] %s\n", v.Severity, v.Entity, v.EntityID, v.Rule, v.Message)
			}
			return fmt.Errorf("%d violations found", len(res.Violations))
		},
	}
}

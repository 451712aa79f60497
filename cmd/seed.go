package main

import (
	"fmt"

	"github.com/Varun6712/smart-calories/config"
	"github.com/Varun6712/smart-calories/services"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the database and insert the reference foods if the catalog is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		db, err := config.OpenDB(cfg)
		if err != nil {
			return err
		}
		n, err := services.NewFoodService(db).Seed()
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Food catalog already populated")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d foods\n", n)
		return nil
	},
}

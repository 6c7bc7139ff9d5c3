package main

import (
	"encoding/json"

	response "checkout_verifier/internal/adapter/http/dto/response"
	"checkout_verifier/internal/adapter/persistence/repository"
	"checkout_verifier/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Inspect the payment status store",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get [transaction_id]",
		Short: "Print the stored record for a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, _ := repository.NewPaymentStatusStore(cmd.Context(), cfg.Store)

			rec, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(response.FromPaymentRecord(rec))
		},
	})
	return cmd
}

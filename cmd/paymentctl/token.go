package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"checkout_verifier/internal/infrastructure/config"
	"checkout_verifier/internal/infrastructure/security"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue or inspect confirmation access tokens",
	}
	cmd.AddCommand(tokenIssueCmd())
	cmd.AddCommand(tokenInspectCmd())
	return cmd
}

func tokenIssueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "issue [transaction_id] [amount]",
		Short: "Mint a token with PAYMENT_TOKEN_SECRET (support and testing only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("amount must be a number: %w", err)
			}
			codec, err := loadTokenCodec()
			if err != nil {
				return err
			}
			token, err := codec.Issue(args[0], amount)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func tokenInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [token]",
		Short: "Validate a token and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := loadTokenCodec()
			if err != nil {
				return err
			}
			v := codec.Validate(args[0])
			out := map[string]any{"valid": v.Valid}
			if v.Valid {
				out["transaction_id"] = v.TransactionID
				out["amount"] = v.Amount
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func loadTokenCodec() (*security.HMACTokenCodec, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return security.NewHMACTokenCodec(cfg.Security.TokenSecret)
}

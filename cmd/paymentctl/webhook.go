package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"checkout_verifier/internal/infrastructure/config"
	"checkout_verifier/internal/infrastructure/security"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var errWebhookSecretMissing = errors.New("WEBHOOK_SECRET is not set")

func webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Webhook helpers",
	}
	cmd.AddCommand(webhookSignCmd())
	return cmd
}

func webhookSignCmd() *cobra.Command {
	var (
		data   string
		file   string
		target string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a webhook body with WEBHOOK_SECRET and optionally deliver it",
		Long: `Reads the body from --data, --file or stdin and prints the
X-Signature header value. With --url the signed body is POSTed there.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Security.WebhookSecret == "" {
				return errWebhookSecretMissing
			}

			body, err := readBody(cmd.InOrStdin(), data, file)
			if err != nil {
				return err
			}
			signature := "sha256=" + security.NewWebhookSignatureVerifier(cfg.Security.WebhookSecret).Sign(body)

			if target == "" {
				fmt.Fprintln(cmd.OutOrStdout(), signature)
				return nil
			}

			resp, err := resty.New().SetTimeout(10*time.Second).R().
				SetContext(cmd.Context()).
				SetHeader("Content-Type", "application/json").
				SetHeader("X-Signature", signature).
				SetBody(body).
				Post(target)
			if err != nil {
				return fmt.Errorf("deliver webhook: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", resp.StatusCode(), resp.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Webhook body")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the body from a file")
	cmd.Flags().StringVar(&target, "url", "", "POST the signed body to this URL")
	return cmd
}

func readBody(stdin io.Reader, data, file string) ([]byte, error) {
	switch {
	case data != "":
		return []byte(data), nil
	case file != "":
		return os.ReadFile(file)
	default:
		return io.ReadAll(stdin)
	}
}

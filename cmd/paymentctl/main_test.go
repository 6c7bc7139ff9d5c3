package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"checkout_verifier/internal/infrastructure/security"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	t.Setenv("PAYMENT_TOKEN_SECRET", "cli-token-secret")
	t.Setenv("WEBHOOK_SECRET", "cli-webhook-secret")
	t.Setenv("INPAGAMENTOS_WEBHOOK_SECRET", "")
	t.Setenv("STATUS_STORE_BACKEND", "memory")
	t.Setenv("PORT", "")
	t.Setenv("GATEWAY_TIMEOUT", "")
	t.Setenv("STORE_TIMEOUT", "")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenIssueAndInspect(t *testing.T) {
	setTestEnv(t)

	token, err := run(t, "", "token", "issue", "TX1", "150")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	token = strings.TrimSpace(token)

	out, err := run(t, "", "token", "inspect", token)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if got["valid"] != true || got["transaction_id"] != "TX1" || got["amount"] != float64(150) {
		t.Fatalf("unexpected claims: %v", got)
	}

	out, err = run(t, "", "token", "inspect", token+"0")
	if err != nil {
		t.Fatalf("inspect tampered: %v", err)
	}
	if strings.TrimSpace(out) != "{\n  \"valid\": false\n}" {
		t.Fatalf("tampered token reported as %q", out)
	}

	if _, err := run(t, "", "token", "issue", "TX1", "ten"); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}

func TestWebhookSign(t *testing.T) {
	setTestEnv(t)
	body := `{"data":{"id":"TX1","status":"paid"}}`
	want := "sha256=" + security.NewWebhookSignatureVerifier("cli-webhook-secret").Sign([]byte(body))

	t.Run("from flag", func(t *testing.T) {
		out, err := run(t, "", "webhook", "sign", "--data", body)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if strings.TrimSpace(out) != want {
			t.Fatalf("expected %s, got %s", want, out)
		}
	})

	t.Run("from stdin", func(t *testing.T) {
		out, err := run(t, body, "webhook", "sign")
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if strings.TrimSpace(out) != want {
			t.Fatalf("expected %s, got %s", want, out)
		}
	})

	t.Run("delivers to url", func(t *testing.T) {
		var gotSig string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSig = r.Header.Get("X-Signature")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"received":true}`))
		}))
		defer srv.Close()

		out, err := run(t, "", "webhook", "sign", "--data", body, "--url", srv.URL)
		if err != nil {
			t.Fatalf("deliver: %v", err)
		}
		if gotSig != want || !strings.HasPrefix(out, "200") {
			t.Fatalf("unexpected delivery sig=%s out=%s", gotSig, out)
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("WEBHOOK_SECRET", "")
		if _, err := run(t, "", "webhook", "sign", "--data", body); err == nil {
			t.Fatalf("expected error without secret")
		}
	})
}

func TestStatusGet(t *testing.T) {
	setTestEnv(t)

	out, err := run(t, "", "status", "get", "TX404")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if got["status"] != "pending" || got["verified"] != false {
		t.Fatalf("unexpected status: %v", got)
	}
}

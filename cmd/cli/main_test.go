package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/iho/hisab/internal/infrastructure/auth"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestAPIGetSendsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dues":[]}`))
	}))
	defer srv.Close()

	origURL, origToken, origTimeout := baseURL, token, timeout
	defer func() { baseURL, token, timeout = origURL, origToken, origTimeout }()
	baseURL = srv.URL
	token = "test-token"
	timeout = 5 * time.Second

	out := captureOutput(t, func() {
		if err := apiGet("/api/v1/businesses/biz-1/transactions/dues"); err != nil {
			t.Errorf("apiGet failed: %v", err)
		}
	})

	if gotAuth != "Bearer test-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotPath != "/api/v1/businesses/biz-1/transactions/dues" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if !strings.Contains(out, "\"dues\"") {
		t.Fatalf("expected dues in output, got %q", out)
	}
}

func TestAPIGetReportsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
	}))
	defer srv.Close()

	origURL, origTimeout := baseURL, timeout
	defer func() { baseURL, timeout = origURL, origTimeout }()
	baseURL = srv.URL
	timeout = 5 * time.Second

	err := apiGet("/api/v1/businesses/biz-1/consistency")
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
	if !strings.Contains(err.Error(), "status 403") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestTokenCmdMintsVerifiableToken(t *testing.T) {
	cmd := tokenCmd()
	cmd.SetArgs([]string{"user-1", "--secret", "test-secret", "--email", "user-1@example.com"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("command failed: %v", err)
		}
	})

	signed := strings.TrimSpace(out)
	manager := auth.NewJWTManager("test-secret", time.Hour)
	claims, err := manager.Verify(signed)
	if err != nil {
		t.Fatalf("minted token did not verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user-1, got %q", claims.UserID)
	}
	if claims.Email != "user-1@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
}

func TestSummaryCmdAppendsYear(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"months":[]}`))
	}))
	defer srv.Close()

	origURL, origTimeout := baseURL, timeout
	defer func() { baseURL, timeout = origURL, origTimeout }()
	baseURL = srv.URL
	timeout = 5 * time.Second

	cmd := summaryCmd()
	cmd.SetArgs([]string{"biz-1", "--year", "2026"})

	captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("command failed: %v", err)
		}
	})

	if gotQuery != "year=2026" {
		t.Fatalf("expected year query, got %q", gotQuery)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/infrastructure/auth"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hisab-cli",
		Short: "Hisab CLI tool",
		Long:  `A command line interface for interacting with the Hisab API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Hisab API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated requests")

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Report operations",
	}
	reportCmd.AddCommand(duesCmd())
	reportCmd.AddCommand(summaryCmd())
	reportCmd.AddCommand(consistencyCmd())
	rootCmd.AddCommand(reportCmd)

	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func duesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dues <businessID>",
		Short: "Show pending dues between members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet(fmt.Sprintf("/api/v1/businesses/%s/transactions/dues", args[0]))
		},
	}
}

func summaryCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "summary <businessID>",
		Short: "Show the monthly income and expense summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/businesses/%s/transactions/summary/monthly", args[0])
			if year > 0 {
				path = fmt.Sprintf("%s?year=%d", path, year)
			}
			return apiGet(path)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to summarize (defaults to the current year)")

	return cmd
}

func consistencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistency <businessID>",
		Short: "Check settlement bookkeeping consistency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet(fmt.Sprintf("/api/v1/businesses/%s/consistency", args[0]))
		},
	}
}

func tokenCmd() *cobra.Command {
	var (
		secret string
		email  string
		expiry time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <userID>",
		Short: "Mint a bearer token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := auth.NewJWTManager(secret, expiry)
			signed, err := manager.Generate(&domain.User{ID: args[0], Email: email})
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}
			fmt.Println(signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", os.Getenv("JWT_SECRET"), "Signing secret (defaults to JWT_SECRET)")
	cmd.Flags().StringVar(&email, "email", "", "Email claim to embed in the token")
	cmd.Flags().DurationVar(&expiry, "expiry", 24*time.Hour, "Token lifetime")

	return cmd
}

// apiGet performs an authenticated GET and pretty prints the JSON body.
func apiGet(path string) error {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(result)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to encode output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

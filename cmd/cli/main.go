package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "account-manager-cli",
		Short: "Account manager CLI tool",
		Long:  `A command line interface for interacting with the account manager API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the account manager API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	balanceCmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getBalance(args[0])
		},
	}

	var currency string
	transferCmd := &cobra.Command{
		Use:   "transfer <from-account-id> <to-account-id> <amount>",
		Short: "Transfer funds between two accounts",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			transfer(args[0], args[1], args[2], currency)
		},
	}
	transferCmd.Flags().StringVar(&currency, "currency", "", "Transfer currency (defaults to HKD)")

	transactionCmd := &cobra.Command{
		Use:   "transaction <transaction-id>",
		Short: "Show a recorded transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getTransaction(args[0])
		},
	}

	rootCmd.AddCommand(balanceCmd, transferCmd, transactionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getBalance(accountID string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/accounts/" + accountID + "/balance")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printAPIError(resp.StatusCode, body)
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Account:  %s\n", accountID)
	fmt.Printf("Balance:  %v %v\n", result["balance"], result["currency"])
	fmt.Printf("Type:     %v\n", result["type"])
}

func transfer(from, to, amount, currency string) {
	payload := map[string]any{
		"fromAccountId": json.Number(from),
		"toAccountId":   json.Number(to),
		"amount":        json.Number(amount),
	}
	if currency != "" {
		payload["currency"] = currency
	}

	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/transactions", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		printAPIError(resp.StatusCode, respBody)
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(respBody, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transfer complete\n")
	fmt.Printf("Transaction:  %v\n", result["transactionId"])
	fmt.Printf("From %v:  %s\n", result["fromAccountId"], formatBalance(result["fromAccountBalance"]))
	fmt.Printf("To   %v:  %s\n", result["toAccountId"], formatBalance(result["toAccountBalance"]))
}

func formatBalance(v any) string {
	snapshot, ok := v.(map[string]any)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%v %v (%v)", snapshot["balance"], snapshot["currency"], snapshot["type"])
}

func getTransaction(id string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/transactions/" + id)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printAPIError(resp.StatusCode, body)
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transaction:  %v\n", result["transactionId"])
	fmt.Printf("From:         %v\n", result["fromAccountId"])
	fmt.Printf("To:           %v\n", result["toAccountId"])
	fmt.Printf("Amount:       %v %v\n", result["amount"], result["currency"])
	fmt.Printf("Created:      %v\n", result["createdAt"])
}

func printAPIError(status int, body []byte) {
	var apiErr struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Msg != "" {
		fmt.Printf("Request failed (status %d, code %d): %s\n", status, apiErr.Code, apiErr.Msg)
		return
	}

	fmt.Printf("Request failed (status %d): %s\n", status, string(body))
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"adhd-task-assistant/pkg/gcalendar"
)

const defaultCredentialsFile = "google-credentials.json"

func calendarAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar-auth [credentials.json]",
		Short: "Authorize Google Calendar with OAuth desktop credentials and write token.json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := defaultCredentialsFile
			if len(args) == 1 {
				credsPath = args[0]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}
			cfg, err := gcalendar.NewOAuthConfig(data)
			if err != nil {
				return err
			}

			fmt.Println("1. Open this URL and sign in with your Google account:")
			fmt.Println()
			fmt.Println(cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Println()
			fmt.Print("2. Paste the authorization code here and press Enter: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && code == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := cfg.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(gcalendar.TokenFile, tok); err != nil {
				return err
			}

			fmt.Printf("\nSaved %s. Restart the API to enable calendar reminders.\n", gcalendar.TokenFile)
			return nil
		},
	}
}

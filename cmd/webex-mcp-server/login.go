package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lutztalk/mcp-webexcalling/internal/config"
	"github.com/lutztalk/mcp-webexcalling/webex"
)

// newLoginCmd runs the browser-based OAuth flow and prints the tokens.
// Tokens are never persisted; the operator exports WEBEX_ACCESS_TOKEN.
func newLoginCmd() *cobra.Command {
	var timeout time.Duration
	var refreshToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a Webex access token via the OAuth authorization-code flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			flow, err := webex.NewOAuthFlow(webex.OAuthConfig{
				ClientID:     cfg.OAuthClientID,
				ClientSecret: cfg.OAuthClientSecret,
				RedirectURI:  cfg.OAuthRedirectURI,
				Scope:        cfg.OAuthScope,
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if refreshToken != "" {
				token, err := flow.RefreshToken(ctx, refreshToken)
				if err != nil {
					return err
				}
				printToken(token)
				return nil
			}

			authURL, state := flow.AuthorizationURL()
			fmt.Fprintf(os.Stderr, "Open this URL in your browser to authorize:\n\n  %s\n\nWaiting for callback on %s ...\n", authURL, cfg.OAuthRedirectURI)

			code, err := flow.WaitForCallback(ctx, state)
			if err != nil {
				return err
			}
			token, err := flow.ExchangeCode(ctx, code)
			if err != nil {
				return err
			}
			printToken(token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "How long to wait for the browser authorization")
	cmd.Flags().StringVar(&refreshToken, "refresh", "", "Refresh an existing token instead of starting a new flow")
	return cmd
}

func printToken(token *webex.TokenResponse) {
	fmt.Printf("export WEBEX_ACCESS_TOKEN=%s\n", token.AccessToken)
	if token.RefreshToken != "" {
		fmt.Printf("# refresh token (expires with the integration): %s\n", token.RefreshToken)
	}
	fmt.Printf("# access token expires in %ds\n", token.ExpiresIn)
}

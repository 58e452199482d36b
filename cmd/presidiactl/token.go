package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"presidia-backend/infrastructure/config"
	"presidia-backend/pkg/auth"
)

func tokenCmd() *cobra.Command {
	var (
		userID string
		email  string
		roles  []string
		expiry time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development JWT for the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			generator, err := auth.NewJWTGenerator(auth.JWTGeneratorConfig{
				SigningMethod: "HS256",
				SecretKey:     cfg.JWTSecret,
				Issuer:        cfg.JWTIssuer,
				Audience:      []string{"presidia-api"},
				ExpiryTime:    expiry,
			})
			if err != nil {
				return fmt.Errorf("create generator: %w", err)
			}

			token, err := generator.GenerateToken(userID, email, roles)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "dev-user", "subject claim for the token")
	cmd.Flags().StringVar(&email, "email", "dev@presidia.local", "email claim for the token")
	cmd.Flags().StringSliceVar(&roles, "roles", []string{"authenticated"}, "role claims for the token")
	cmd.Flags().DurationVar(&expiry, "expiry", 24*time.Hour, "token lifetime")

	return cmd
}

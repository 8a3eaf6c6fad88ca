package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token <client-id>",
	Short: "Issue an API bearer token for a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	jwtConfig, err := appConfig.JWT()
	if err != nil {
		return err
	}
	if jwtConfig == nil {
		return fmt.Errorf("server.jwt_secret is not configured (PROFILE_SERVER_JWT_SECRET)")
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(args[0])
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

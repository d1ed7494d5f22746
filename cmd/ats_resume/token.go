package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an API token",
	Long:  "Token prints an HS256 bearer token for the /resumes API, signed with JWT_SECRET.",
	RunE:  runToken,
}

var tokenSubject string

func init() {
	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "", "Client name recorded in the token (required)")
	_ = tokenCmd.MarkFlagRequired("subject")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(tokenSubject)
	if err != nil {
		return err
	}

	loggerFromContext(cmd.Context()).Debug("minted token", "subject", tokenSubject, "ttl", jwtConfig.TTL())
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

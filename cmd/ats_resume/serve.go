package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that renders posted records to PDF. When a database is configured
(DATABASE_URL or database_url in --config) resumes can also be stored and rendered by id.`,
	RunE: runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default: PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port, err := resolvePort(servePort)
	if err != nil {
		return err
	}

	// The database is optional here.
	url, _ := databaseURL("")

	srv, err := server.New(server.Config{
		Port:        port,
		DatabaseURL: url,
		Layout:      fileConfig.LayoutConfig(),
		Logger:      loggerFromContext(cmd.Context()),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

func resolvePort(flag int) (int, error) {
	if flag != 0 {
		return flag, nil
	}
	if env := os.Getenv("PORT"); env != "" {
		port, err := strconv.Atoi(env)
		if err != nil {
			return 0, fmt.Errorf("invalid PORT %q: %w", env, err)
		}
		return port, nil
	}
	return 8080, nil
}

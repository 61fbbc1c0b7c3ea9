package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/cmd/api/commands"
)

// @title To-Do List API
// @version 1.0
// @description Personal task management service with deadline reminders

// @host localhost:3000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "todolist",
		Short: "To-Do List API Server",
		Long:  `To-Do List is a personal task management service with owner-scoped tasks and deadline reminder notifications.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}

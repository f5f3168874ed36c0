package cmd

import (
	"fmt"
	"os"

	"gamebuddy-user/internal/config"
	"gamebuddy-user/internal/infrastructure/database"
	"gamebuddy-user/pkg/logger"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demo data",
	Long: `Reset the database and populate it with demo users, reviews and
friendships. Intended for development and manual testing only.`,
	Run: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	cfg := config.Get()

	db, err := database.NewConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.Username,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.SeedTestData(db); err != nil {
		logger.Error("Seeding failed: %v", err)
		os.Exit(1)
	}

	fmt.Println("Seeding completed successfully!")
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"calorify/database"
	"calorify/internal/config"
	"calorify/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numRecords := seedCmd.Int("records", utils.DefaultNumRecords, "Number of dataset rows to generate")
	seed := seedCmd.Int64("seed", 42, "Random seed for generated values")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cfg := config.Load()

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		database.ConnectDatabase(cfg)
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		log.Printf("Seeding %d dataset rows", *numRecords)
		if err := utils.SeedDataset(database.DB, *numRecords, *seed); err != nil {
			log.Fatalf("Error seeding dataset: %v", err)
		}

	case "clear":
		database.ConnectDatabase(cfg)

		log.Println("Clearing seeded dataset rows")
		if err := utils.ClearSeededData(database.DB); err != nil {
			log.Fatalf("Error clearing seeded data: %v", err)
		}

	case "stats":
		database.ConnectDatabase(cfg)

		exercise, calories, err := utils.DatasetCounts(database.DB)
		if err != nil {
			log.Fatalf("Error getting stats: %v", err)
		}
		log.Printf("exercise_data: %d rows", exercise)
		log.Printf("calories_data: %d rows", calories)

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Dataset utility tool for Calorify")
	fmt.Println("\nUsage:")
	fmt.Println("  db-tool COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Generate synthetic exercise/calorie rows for testing")
	fmt.Println("               Options:")
	fmt.Println("                 --records=N   Number of rows to generate (default: 1000)")
	fmt.Println("                 --seed=N      Random seed (default: 42)")
	fmt.Println("")
	fmt.Println("  clear        Delete generated rows (imported data is untouched)")
	fmt.Println("")
	fmt.Println("  stats        Show dataset table sizes")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host (default: localhost)")
	fmt.Println("  DB_PORT      Database port (default: 5432)")
	fmt.Println("  DB_USER      Database user (default: postgres)")
	fmt.Println("  DB_PASSWORD  Database password")
	fmt.Println("  DB_NAME      Database name (default: calorify)")
	fmt.Println("  DB_SSLMODE   Database SSL mode (default: disable)")
}

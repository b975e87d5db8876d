package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/zspldev/Webapp-NotesMate/internal/config"
	"github.com/zspldev/Webapp-NotesMate/internal/database"
	"github.com/zspldev/Webapp-NotesMate/internal/models"
	"github.com/zspldev/Webapp-NotesMate/internal/services"
)

type CLI struct {
	conn     database.Database
	db       *gorm.DB
	registry *services.RegistryService
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	cli := &CLI{
		conn:     db,
		db:       db.DB(),
		registry: services.NewRegistryService(db.DB()),
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "org-create":
		cli.createOrganization(args)
	case "client-create":
		cli.createClient(args)
	case "org-list":
		cli.listOrganizations()
	case "db-status":
		cli.checkDatabaseStatus()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("NotesMate API - Seed CLI")
	fmt.Println()
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  org-create    Create an organization with its first employee")
	fmt.Println("  client-create Register a client under an organization")
	fmt.Println("  org-list      List all organizations")
	fmt.Println("  db-status     Check database connection status")
	fmt.Println()
	fmt.Println("Use 'seed <command> -h' for command-specific help")
}

func (cli *CLI) createOrganization(args []string) {
	var (
		orgID        uint
		orgName      string
		shortname    string
		address      string
		phone        string
		email        string
		empID        uint
		empName      string
		empShortname string
		empPhone     string
		empEmail     string
	)

	fs := flag.NewFlagSet("org-create", flag.ExitOnError)
	fs.UintVar(&orgID, "org-id", 0, "Organization id (required)")
	fs.StringVar(&orgName, "name", "", "Organization name (required)")
	fs.StringVar(&shortname, "shortname", "", "Organization shortname (required)")
	fs.StringVar(&address, "address", "", "Organization address (required)")
	fs.StringVar(&phone, "phone", "", "Organization phone (required)")
	fs.StringVar(&email, "email", "", "Organization email (required)")
	fs.UintVar(&empID, "emp-id", 0, "First employee id (required)")
	fs.StringVar(&empName, "emp-name", "", "First employee name (required)")
	fs.StringVar(&empShortname, "emp-shortname", "", "First employee shortname (required)")
	fs.StringVar(&empPhone, "emp-phone", "", "First employee phone (required)")
	fs.StringVar(&empEmail, "emp-email", "", "First employee email (required)")
	fs.Parse(args)

	if orgID == 0 || orgName == "" || empID == 0 || empEmail == "" {
		fmt.Println("Error: -org-id, -name, -emp-id and -emp-email are required")
		fs.Usage()
		os.Exit(1)
	}

	org := models.Organization{
		OrgID:     orgID,
		OrgName:   orgName,
		Shortname: shortname,
		Address:   address,
		Phone:     phone,
		Email:     email,
	}
	emp := models.Employee{
		OrgID:        orgID,
		EmpID:        empID,
		EmpName:      empName,
		EmpShortname: empShortname,
		EmpPhone:     empPhone,
		EmpEmail:     empEmail,
	}

	if err := cli.registry.RegisterOrganizationAndEmployee(context.Background(), &org, &emp); err != nil {
		log.Fatalf("Failed to create organization: %v", err)
	}

	fmt.Printf("Created organization %d (%s) with employee %d (%s)\n", orgID, orgName, empID, empName)
}

func (cli *CLI) createClient(args []string) {
	var (
		orgID     uint
		name      string
		shortname string
		phone     string
		email     string
	)

	fs := flag.NewFlagSet("client-create", flag.ExitOnError)
	fs.UintVar(&orgID, "org-id", 0, "Organization id (required)")
	fs.StringVar(&name, "name", "", "Client name (required)")
	fs.StringVar(&shortname, "shortname", "", "Client shortname")
	fs.StringVar(&phone, "phone", "", "Client phone (defaults to NA)")
	fs.StringVar(&email, "email", "", "Client email (required)")
	fs.Parse(args)

	if orgID == 0 || name == "" || email == "" {
		fmt.Println("Error: -org-id, -name and -email are required")
		fs.Usage()
		os.Exit(1)
	}

	client := models.Client{
		OrgID:           orgID,
		ClientName:      name,
		ClientShortname: shortname,
		ClientPhone:     phone,
		ClientEmail:     email,
	}

	clientID, err := cli.registry.RegisterClient(context.Background(), &client)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	fmt.Printf("Created client %d (%s) under organization %d\n", clientID, name, orgID)
}

func (cli *CLI) listOrganizations() {
	var orgs []models.Organization
	if err := cli.db.Find(&orgs).Error; err != nil {
		log.Fatalf("Failed to list organizations: %v", err)
	}

	if len(orgs) == 0 {
		fmt.Println("No organizations found")
		return
	}

	fmt.Printf("%-8s %-30s %-12s %-30s\n", "ORGID", "NAME", "SHORTNAME", "EMAIL")
	for _, org := range orgs {
		fmt.Printf("%-8d %-30s %-12s %-30s\n", org.OrgID, org.OrgName, org.Shortname, org.Email)
	}
}

func (cli *CLI) checkDatabaseStatus() {
	if err := cli.conn.Ping(); err != nil {
		log.Fatalf("Database unreachable: %v", err)
	}

	var orgCount, empCount, clientCount, noteCount int64
	cli.db.Model(&models.Organization{}).Count(&orgCount)
	cli.db.Model(&models.Employee{}).Count(&empCount)
	cli.db.Model(&models.Client{}).Count(&clientCount)
	cli.db.Model(&models.Note{}).Count(&noteCount)

	fmt.Println("Database connection: OK")
	fmt.Printf("Organizations: %d\nEmployees: %d\nClients: %d\nNotes: %d\n", orgCount, empCount, clientCount, noteCount)
}

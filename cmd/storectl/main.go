package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate:        Create or update the schema and unique indexes
// - seed:           Load the demo catalog into an empty database
// - create-admin:   Provision an administrator account
// - prune-sessions: Delete expired refresh tokens

func main() {
	// Subcommand definitions
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	createAdminCmd := flag.NewFlagSet("create-admin", flag.ExitOnError)
	pruneSessionsCmd := flag.NewFlagSet("prune-sessions", flag.ExitOnError)

	// create-admin parameters
	adminEmail := createAdminCmd.String("email", "", "Administrator email")
	adminPassword := createAdminCmd.String("password", "", "Administrator password")
	adminFirst := createAdminCmd.String("first", "Store", "Administrator first name")
	adminLast := createAdminCmd.String("last", "Admin", "Administrator last name")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := storectlFlags{
		Migrate:       migrateCmd,
		Seed:          seedCmd,
		PruneSessions: pruneSessionsCmd,
		CreateAdmin: createAdminFlags{
			cmd:       createAdminCmd,
			email:     adminEmail,
			password:  adminPassword,
			firstName: adminFirst,
			lastName:  adminLast,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type storectlFlags struct {
	Migrate       *flag.FlagSet
	Seed          *flag.FlagSet
	CreateAdmin   createAdminFlags
	PruneSessions *flag.FlagSet
}

type createAdminFlags struct {
	cmd       *flag.FlagSet
	email     *string
	password  *string
	firstName *string
	lastName  *string
}

func runSubcommand(ctx context.Context, flags *storectlFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(ctx, flags)
	case "seed":
		return handleSeed(ctx, flags)
	case "create-admin":
		return handleCreateAdmin(ctx, flags)
	case "prune-sessions":
		return handlePruneSessions(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleMigrate(ctx context.Context, flags *storectlFlags) error {
	if err := flags.Migrate.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	return runMigrate(ctx)
}

func handleSeed(ctx context.Context, flags *storectlFlags) error {
	if err := flags.Seed.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse seed flags")
	}

	return runSeed(ctx)
}

func handleCreateAdmin(ctx context.Context, flags *storectlFlags) error {
	if err := flags.CreateAdmin.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse create-admin flags")
	}

	if *flags.CreateAdmin.email == "" || *flags.CreateAdmin.password == "" {
		return errors.New("--email and --password flags are required for create-admin command")
	}

	return runCreateAdmin(ctx, adminInput{
		email:     *flags.CreateAdmin.email,
		password:  *flags.CreateAdmin.password,
		firstName: *flags.CreateAdmin.firstName,
		lastName:  *flags.CreateAdmin.lastName,
	})
}

func handlePruneSessions(ctx context.Context, flags *storectlFlags) error {
	if err := flags.PruneSessions.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse prune-sessions flags")
	}

	return runPruneSessions(ctx)
}

func printUsage() {
	fmt.Println("Usage: storectl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate         Create or update the database schema")
	fmt.Println("  seed            Load the demo catalog into an empty database")
	fmt.Println("  create-admin    Provision an administrator account")
	fmt.Println("  prune-sessions  Delete expired refresh tokens")
	fmt.Println("")
	fmt.Println("Use 'storectl <command> -h' for more information about a command.")
}

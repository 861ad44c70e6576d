package admin

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"netgrid/internal/domain/user"
	"netgrid/internal/infrastructure/auth"
	"netgrid/internal/infrastructure/config"
	"netgrid/internal/infrastructure/database"
	"netgrid/internal/infrastructure/repository"
	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/logger"
)

var (
	env      string
	fullName string
	email    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		Long:  `Create an administrator account. Self-registration only produces regular users; administrators are provisioned here.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name of the administrator")
	cmd.Flags().StringVar(&email, "email", "", "Email address of the administrator")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := user.NewUser(fullName, strings.ToLower(email), hash, authorization.RoleAdmin)
	if err != nil {
		return fmt.Errorf("invalid administrator details: %w", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(database.Get())

	existing, err := userRepo.FindByEmail(ctx, admin.Email())
	if err != nil {
		return fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("an account with email %s already exists", admin.Email())
	}

	if err := userRepo.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	fmt.Printf("Administrator %s (%s) created with ID %d\n", admin.FullName(), admin.Email(), admin.ID())
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}

	return string(password), nil
}

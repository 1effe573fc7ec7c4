package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"jobboard-api/config"
	"jobboard-api/internal/app"
	"jobboard-api/internal/transport/dto"

	"github.com/spf13/cobra"
)

var adminEmail string

// createAdminCmd is the only way to create an admin account; the API never
// accepts a role from clients.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin user",
	Long: `Create an admin user. The password is read from ADMIN_PASSWORD.

	ADMIN_PASSWORD=... jobboard-api create-admin --email admin@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			return errors.New("ADMIN_PASSWORD must be set")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		application, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer application.Close()

		req := &dto.CreateAdminRequest{Email: adminEmail, Password: password}
		if err := application.Validator.Struct(req); err != nil {
			return fmt.Errorf("invalid admin details: %w", err)
		}

		user, err := application.UserService.CreateAdmin(cmd.Context(), req)
		if err != nil {
			return err
		}
		log.Printf("Created admin %s (%s)", user.Email, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email address")
	_ = createAdminCmd.MarkFlagRequired("email")
}

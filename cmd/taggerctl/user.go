package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tagger-backend/internal/auth"
	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/internal/service/user"
)

const passwordEnv = "TAGGER_PASSWORD"

func userCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage login accounts",
	}
	cmd.AddCommand(userCreateCommand(rt))
	return cmd
}

// userCreateCommand bootstraps accounts directly through the repositories,
// so it also works before any admin exists.
func userCreateCommand(rt *runtime) *cobra.Command {
	var (
		username string
		password string
		isAdmin  bool
		operator bool
	)

	cmd := &cobra.Command{
		Use:   "create --username NAME [--admin] [--operator]",
		Short: "Create a user account",
		Long: "Creates a login account. The password is taken from --password or the\n" +
			passwordEnv + " environment variable. --operator also provisions the\n" +
			"account as a labeling operator.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}

			input := user.CreateUserInput{
				Username: domain.NormalizeUsername(username),
				Password: password,
				IsAdmin:  isAdmin,
			}
			if err := input.Validate(); err != nil {
				return err
			}

			hash, err := auth.HashPassword(input.Password)
			if err != nil {
				return err
			}

			var created *domain.User
			err = rt.repos.Tx.RunInTx(cmd.Context(), func(ctx context.Context) error {
				now := time.Now()
				u, err := rt.repos.Users.Create(ctx, &domain.User{
					ID:           domain.NewID(),
					Username:     input.Username,
					PasswordHash: hash,
					IsAdmin:      input.IsAdmin,
					CreatedAt:    now,
				})
				if err != nil {
					return err
				}
				created = u

				if !operator {
					return nil
				}
				_, err = rt.repos.Operators.Create(ctx, &domain.Operator{
					ID:        domain.NewID(),
					UserID:    u.ID,
					CreatedAt: now,
				})
				return err
			})
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("username %q is taken", input.Username)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s user %s (%s)\n", created.Role(), created.Username, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "password (prefer "+passwordEnv+")")
	cmd.Flags().BoolVar(&isAdmin, "admin", false, "grant administrative access")
	cmd.Flags().BoolVar(&operator, "operator", false, "also provision as operator")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

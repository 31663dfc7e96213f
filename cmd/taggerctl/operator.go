package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

func operatorCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Manage labeling operators",
	}
	cmd.AddCommand(operatorGrantCommand(rt))
	return cmd
}

// operatorGrantCommand provisions the user as operator when needed and
// grants it access to one dataset.
func operatorGrantCommand(rt *runtime) *cobra.Command {
	var (
		username  string
		datasetID string
	)

	cmd := &cobra.Command{
		Use:   "grant --username NAME --dataset ID",
		Short: "Allow an operator to label a dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsID, err := uuid.Parse(datasetID)
			if err != nil {
				return fmt.Errorf("--dataset: %w", err)
			}

			var granted bool
			err = rt.repos.Tx.RunInTx(cmd.Context(), func(ctx context.Context) error {
				u, err := rt.repos.Users.GetByUsername(ctx, domain.NormalizeUsername(username))
				if err != nil {
					return fmt.Errorf("user %q: %w", username, err)
				}
				if _, err := rt.repos.Datasets.GetByID(ctx, dsID); err != nil {
					return fmt.Errorf("dataset %s: %w", dsID, err)
				}

				op, err := rt.repos.Operators.GetByUserID(ctx, u.ID)
				if errors.Is(err, domain.ErrNotFound) {
					op, err = rt.repos.Operators.Create(ctx, &domain.Operator{
						ID:        domain.NewID(),
						UserID:    u.ID,
						CreatedAt: time.Now(),
					})
				}
				if err != nil {
					return fmt.Errorf("operator: %w", err)
				}

				exists, err := rt.repos.Permissions.Exists(ctx, op.ID, dsID)
				if err != nil || exists {
					return err
				}

				_, err = rt.repos.Permissions.Create(ctx, &domain.Permission{
					ID:         domain.NewID(),
					DatasetID:  dsID,
					OperatorID: op.ID,
					CreatedAt:  time.Now(),
				})
				granted = err == nil
				return err
			})
			if err != nil {
				return err
			}

			if granted {
				fmt.Fprintf(cmd.OutOrStdout(), "granted %s access to dataset %s\n", username, dsID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already has access to dataset %s\n", username, dsID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "operator login name")
	cmd.Flags().StringVar(&datasetID, "dataset", "", "dataset id")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}

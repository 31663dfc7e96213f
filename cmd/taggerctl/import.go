package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

func importCommand(rt *runtime) *cobra.Command {
	var (
		datasetID string
		asUser    string
	)

	cmd := &cobra.Command{
		Use:   "import --dataset ID --as USERNAME FILE",
		Short: "Import sentences from a CSV file into a dataset",
		Long: "Reads the first column of every row as a sentence. The import runs with\n" +
			"the identity of an existing admin account so it lands in the audit log.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(datasetID)
			if err != nil {
				return fmt.Errorf("--dataset: %w", err)
			}

			actor, err := rt.repos.Users.GetByUsername(cmd.Context(), domain.NormalizeUsername(asUser))
			if err != nil {
				return fmt.Errorf("--as %q: %w", asUser, err)
			}
			if !actor.IsAdmin {
				return fmt.Errorf("--as %q: user is not an admin", asUser)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ctx := ctxutil.WithUserID(cmd.Context(), actor.ID)
			ctx = ctxutil.WithUserRole(ctx, actor.Role().String())

			result, err := rt.svcs.Sentences.BulkImport(ctx, id, f)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d sentences, skipped %d rows\n", result.Imported, result.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetID, "dataset", "", "target dataset id")
	cmd.Flags().StringVar(&asUser, "as", "", "admin username performing the import")
	_ = cmd.MarkFlagRequired("dataset")
	_ = cmd.MarkFlagRequired("as")
	return cmd
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/service"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <plain>",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := service.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print submission and validation statistics as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			return writeJSON(cmd.OutOrStdout(), a.Submissions.Statistics(cmd.Context()))
		},
	}
}

func backupCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write the JSON backup of every submission list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			backup := a.Submissions.Backup(cmd.Context())
			if out == "" {
				out = service.BackupFileName(time.Now())
			}
			return writeJSONFile(out, backup)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default pinetown-school-data-<date>.json)")
	return cmd
}

func exportCmd() *cobra.Command {
	var req models.ExportRequest
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a form's submissions as CSV or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			file, records, err := a.Exports.Render(cmd.Context(), req)
			if err != nil {
				return err
			}
			if out == "" {
				out = file.Name
			}
			if err := os.WriteFile(out, file.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d records written to %s\n", records, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Form, "form", "", "Form type (admission, contact, enquiry, volunteer, sponsor)")
	cmd.Flags().StringVar(&req.Format, "format", "csv", "csv or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default generated name)")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}

func pruneExportsCmd() *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "prune-exports",
		Short: "Delete rendered exports whose download links have expired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			removed, err := a.Exports.Cleanup(olderThan)
			if err != nil {
				return err
			}
			for _, name := range removed {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d exports removed\n", len(removed))
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Age cutoff (default EXPORTS_SIGNED_URL_TTL)")
	return cmd
}

func draftsCmd() *cobra.Command {
	drafts := &cobra.Command{
		Use:   "drafts",
		Short: "Manage auto-saved form drafts",
	}
	drafts.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Remove drafts older than FORMS_DRAFT_TTL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			removed := a.Forms.PurgeExpiredDrafts(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "%d expired drafts removed\n", removed)
			return nil
		},
	})
	return drafts
}

func storeCmd() *cobra.Command {
	store := &cobra.Command{
		Use:   "store",
		Short: "Read or remove raw store documents",
	}
	store.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print the raw document stored under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			raw, err := a.Store.Backend().Get(cmd.Context(), args[0])
			if errors.Is(err, kvstore.ErrNotFound) {
				return fmt.Errorf("no document under %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}, &cobra.Command{
		Use:   "rm <key>",
		Short: "Remove the document stored under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			if !a.Store.Remove(cmd.Context(), args[0]) {
				return fmt.Errorf("remove %q failed", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s removed\n", args[0])
			return nil
		},
	}, &cobra.Command{
		Use:   "keys [prefix]",
		Short: "List stored keys",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			for _, k := range a.Store.Keys(cmd.Context(), prefix) {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	})
	return store
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSONFile(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeJSON(f, v); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meibo-app/meibo/internal/platform/config"
	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/internal/record"
	"github.com/meibo-app/meibo/internal/roster"
	"github.com/meibo-app/meibo/internal/validation"
	"github.com/meibo-app/meibo/pkg/pointer"
)

// app bundles the wired dependencies the subcommands share.
type app struct {
	cfg        *config.Config
	service    *validation.Service
	repository *roster.Repository
	logger     *slog.Logger
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meibo",
		Short: "Meibo personnel roster",
		Long: `Meibo manages a bounded collection of personnel records backed by a single
CSV file. Records pass through the same validation pipeline whether they are
entered interactively or bulk-imported.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       constants.AppVersion,
	}
	cmd.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newAddCmd(a),
		newUpdateCmd(a),
		newRemoveCmd(a),
		newImportCmd(a),
		newExportCmd(a),
	)
	return cmd
}

// # Queries

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records",
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := a.repository.FindAll(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKANA\tJOINED\tYEARS\tSKILLS")
			for _, rec := range outcome.Accepted {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
					rec.EmployeeID, rec.Name, rec.Kana,
					rec.JoinDate.Format(constants.DateLayout),
					rec.YearsExperience,
					strings.Join(rec.Skills, constants.ListDelimiter),
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if len(outcome.Rejected) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d row(s) rejected:\n", len(outcome.Rejected))
				for _, rej := range outcome.Rejected {
					fmt.Fprintf(cmd.ErrOrStderr(), "  line %d: %s\n", rej.Line, rej.Reason)
				}
			}
			if outcome.CapacityExceeded {
				fmt.Fprintf(cmd.ErrOrStderr(),
					"warning: record count %d exceeds the configured maximum of %d\n",
					len(outcome.Accepted), a.cfg.MaxRecords)
			}
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <employee-id>",
		Short: "Show one record in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.repository.FindByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printRecord(cmd, rec)
			return nil
		},
	}
}

func printRecord(cmd *cobra.Command, rec *record.Record) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-16s %s\n", "ID:", rec.EmployeeID)
	fmt.Fprintf(out, "%-16s %s (%s)\n", "Name:", rec.Name, rec.Kana)
	fmt.Fprintf(out, "%-16s %s\n", "Born:", rec.BirthDate.Format(constants.DateLayout))
	fmt.Fprintf(out, "%-16s %s\n", "Joined:", rec.JoinDate.Format(constants.DateLayout))
	fmt.Fprintf(out, "%-16s %d\n", "Experience:", rec.YearsExperience)
	fmt.Fprintf(out, "%-16s %s\n", "Skills:", strings.Join(rec.Skills, ", "))
	if rec.CareerHistory != "" {
		fmt.Fprintf(out, "%-16s %s\n", "Career:", rec.CareerHistory)
	}
	if rec.TrainingHistory != "" {
		fmt.Fprintf(out, "%-16s %s\n", "Training:", rec.TrainingHistory)
	}
	ratings := []struct {
		label string
		value *float64
	}{
		{"Technical:", rec.RatingTechnical},
		{"Communication:", rec.RatingCommunication},
		{"Leadership:", rec.RatingLeadership},
		{"Attitude:", rec.RatingAttitude},
	}
	for _, r := range ratings {
		if r.value != nil {
			fmt.Fprintf(out, "%-16s %.1f\n", r.label, pointer.Val(r.value))
		}
	}
	if rec.Note != "" {
		fmt.Fprintf(out, "%-16s %s\n", "Note:", rec.Note)
	}
	fmt.Fprintf(out, "%-16s %s\n", "Registered:", rec.RegisteredAt.Format(constants.TimestampLayout))
}

// # Mutations

// formFlags collects the raw field inputs of add/update as entered, before
// any normalization; the validation pipeline owns all cleanup.
type formFlags struct {
	id, name, kana             string
	birth, join, years, skills string
	career, training, note     string
	ratings                    [4]string
}

func (f *formFlags) register(cmd *cobra.Command, withID bool) {
	if withID {
		cmd.Flags().StringVar(&f.id, "id", "", "employee identifier (XX#####)")
	}
	cmd.Flags().StringVar(&f.name, "name", "", "full name (kanji or kana)")
	cmd.Flags().StringVar(&f.kana, "kana", "", "phonetic name (katakana; hiragana is converted)")
	cmd.Flags().StringVar(&f.birth, "birth", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.join, "join", "", "join date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.years, "years", "", "years of experience (0-50)")
	cmd.Flags().StringVar(&f.skills, "skills", "", "skill tags, semicolon separated")
	cmd.Flags().StringVar(&f.career, "career", "", "career history")
	cmd.Flags().StringVar(&f.training, "training", "", "training history")
	cmd.Flags().StringVar(&f.note, "note", "", "free-text note")
	cmd.Flags().StringVar(&f.ratings[0], "rating-technical", "", "technical rating (1.0-5.0, 0.5 steps)")
	cmd.Flags().StringVar(&f.ratings[1], "rating-communication", "", "communication rating")
	cmd.Flags().StringVar(&f.ratings[2], "rating-leadership", "", "leadership rating")
	cmd.Flags().StringVar(&f.ratings[3], "rating-attitude", "", "attitude rating")
}

func (f *formFlags) rawValues(id string) map[string]string {
	return map[string]string{
		constants.ColEmployeeID:      id,
		constants.ColName:            f.name,
		constants.ColKana:            f.kana,
		constants.ColBirthDate:       f.birth,
		constants.ColJoinDate:        f.join,
		constants.ColYearsExperience: f.years,
		constants.ColSkills:          f.skills,
		constants.ColCareerHistory:   f.career,
		constants.ColTrainingHistory: f.training,
		constants.ColRatingTechnical: f.ratings[0],
		constants.ColRatingComms:     f.ratings[1],
		constants.ColRatingLeader:    f.ratings[2],
		constants.ColRatingAttitude:  f.ratings[3],
		constants.ColNote:            f.note,
	}
}

// validateForm runs the interactive-entry pipeline and converts a failed
// outcome into a printable error. registeredAt carries an existing record's
// timestamp through an update; empty means "stamp with now".
func (a *app) validateForm(cmd *cobra.Command, raw map[string]string, existingIDs []string, registeredAt string) (*record.Record, error) {
	validators := validation.RecordValidators(a.cfg, existingIDs)
	outcome := a.service.Run(raw, validators)
	if !outcome.Valid() {
		fmt.Fprintln(cmd.ErrOrStderr(), "invalid input:")
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", strings.ReplaceAll(outcome.Summary(), "; ", "\n  "))
		return nil, outcome.Err()
	}
	return record.FromValues(outcome.Values, registeredAt)
}

func newAddCmd(a *app) *cobra.Command {
	var form formFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new record",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			current, err := a.repository.FindAll(ctx)
			if err != nil {
				return err
			}
			existing := make([]string, 0, len(current.Accepted))
			for _, rec := range current.Accepted {
				existing = append(existing, rec.EmployeeID)
			}

			rec, err := a.validateForm(cmd, form.rawValues(form.id), existing, "")
			if err != nil {
				return err
			}
			if err := a.repository.Save(ctx, rec); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", rec.EmployeeID)
			return nil
		},
	}
	form.register(cmd, true)
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var form formFlags
	cmd := &cobra.Command{
		Use:   "update <employee-id>",
		Short: "Replace an existing record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			existing, err := a.repository.FindByID(ctx, args[0])
			if err != nil {
				return err
			}

			// The record's own identifier stays out of the uniqueness set so
			// re-entering it does not read as a collision; the original
			// registration timestamp survives the replacement.
			rec, err := a.validateForm(cmd, form.rawValues(args[0]), nil,
				existing.RegisteredAt.Format(constants.TimestampLayout))
			if err != nil {
				return err
			}
			if err := a.repository.Update(ctx, rec); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", rec.EmployeeID)
			return nil
		},
	}
	form.register(cmd, false)
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <employee-id>...",
		Short: "Remove one or more records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.repository.DeleteAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d record(s)\n", removed)
			return nil
		},
	}
}

// # Bulk Transfer

func newImportCmd(a *app) *cobra.Command {
	var appendMode bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-import records from a roster-format CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.repository.ImportFile(cmd.Context(), args[0], appendMode)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d, replaced %d, skipped %d\n",
				report.Imported, report.Replaced, report.Skipped)
			for _, rej := range report.Rejected {
				fmt.Fprintf(cmd.ErrOrStderr(), "  rejected line %d: %s\n", rej.Line, rej.Reason)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&appendMode, "append", false, "append new rows instead of rewriting the file")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export all records to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := a.repository.ExportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d record(s)\n", count)
			return nil
		},
	}
}

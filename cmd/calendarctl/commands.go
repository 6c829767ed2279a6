package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go-attendance/internal/app"
	"go-attendance/internal/calendar"
	"go-attendance/internal/config"
	"go-attendance/internal/leave"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type configLoader func() (*config.Config, error)

func newRootCmd(out io.Writer, load configLoader) *cobra.Command {
	root := &cobra.Command{
		Use:   "calendarctl",
		Short: "Manage the holiday calendar used for working day decisions",
		Long: `calendarctl imports YAML holiday calendars and answers working day
questions against the same database the API uses.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.AddCommand(newImportCmd(load), newCheckCmd(load))
	return root
}

func newImportCmd(load configLoader) *cobra.Command {
	var companyID, file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import holidays from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := uuid.Parse(companyID); err != nil {
				return fmt.Errorf("--company must be a uuid: %w", err)
			}
			holidays, err := calendar.LoadHolidayFile(file)
			if err != nil {
				return err
			}

			cfg, err := load()
			if err != nil {
				return err
			}
			gormDB, sqlDB, err := app.OpenDatabase(cfg.DB)
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			repo := calendar.NewHolidayRepository(gormDB)
			svc := calendar.NewService(calendar.NewPolicy(repo, nil, cfg.Attendance.HolidayRegion), repo, cfg.Attendance.HolidayRegion)

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			res, err := svc.ImportHolidays(ctx, companyID, holidays)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d holidays for region %s (%d already present).\n",
				res.Inserted, res.Total, res.Region, res.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company id")
	cmd.Flags().StringVar(&file, "file", "", "path to the YAML holiday file")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newCheckCmd(load configLoader) *cobra.Command {
	var companyID, employeeID, date string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Tell whether a date is a working day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := calendar.ParseDate(date)
			if err != nil {
				return err
			}

			cfg, err := load()
			if err != nil {
				return err
			}
			gormDB, sqlDB, err := app.OpenDatabase(cfg.DB)
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			policy := calendar.NewPolicy(
				calendar.NewHolidayRepository(gormDB),
				leave.NewRepository(gormDB),
				cfg.Attendance.HolidayRegion,
			)
			working, err := policy.IsWorkingDay(cmd.Context(), companyID, employeeID, day)
			if err != nil {
				return err
			}

			verdict := "not a working day"
			if working {
				verdict = "a working day"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", calendar.FormatDate(day), verdict)
			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company id")
	cmd.Flags().StringVar(&employeeID, "employee", "", "employee id; leave is ignored when empty")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

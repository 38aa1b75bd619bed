package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"adbudget/internal/adapter/httpclient"
	"adbudget/internal/core/port"
)

type clientFunc func() *httpclient.Client

func newInitBrandCmd(client clientFunc) *cobra.Command {
	var campaigns []string
	cmd := &cobra.Command{
		Use:   "init-brand NAME MONTHLY_BUDGET DAILY_BUDGET",
		Short: "Create or replace a brand",
		Example: `  budgetctl init-brand "Test Brand" 3000 100 \
    --campaign "Day Campaign=9-17" --campaign "Night Campaign=18-23"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			monthly, err := parseAmount("monthly budget", args[1])
			if err != nil {
				return err
			}
			daily, err := parseAmount("daily budget", args[2])
			if err != nil {
				return err
			}
			def := port.BrandDefinition{Name: args[0], MonthlyBudget: monthly, DailyBudget: daily}
			for _, raw := range campaigns {
				c, err := parseCampaign(raw)
				if err != nil {
					return err
				}
				def.Campaigns = append(def.Campaigns, c)
			}
			res, err := client().InitBrand(cmd.Context(), def)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringArrayVar(&campaigns, "campaign", nil, `campaign as NAME=START-END[,START-END...] (repeatable)`)
	return cmd
}

func newUpdateSpendCmd(client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "update-spend NAME AMOUNT",
		Short: "Record spend against a brand's daily and monthly budgets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[1])
			if err != nil {
				return err
			}
			res, err := client().UpdateSpend(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newResetDailyCmd(client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-daily",
		Short: "Reset the daily spend of every brand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := client().ResetDaily(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newResetMonthlyCmd(client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-monthly",
		Short: "Reset the monthly spend of every brand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := client().ResetMonthly(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newCheckStatusCmd(client clientFunc) *cobra.Command {
	var atFlag string
	cmd := &cobra.Command{
		Use:   "check-status",
		Short: "Re-evaluate every campaign against its hours and budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var at *time.Time
			if atFlag != "" {
				t, err := time.Parse(time.RFC3339, atFlag)
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
				at = &t
			}
			res, err := client().CheckStatus(cmd.Context(), at)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&atFlag, "at", "", "evaluation instant in RFC3339 (default: server time)")
	return cmd
}

func newGetBrandCmd(client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "get-brand NAME",
		Short: "Show a brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := client().GetBrand(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), snap)
		},
	}
}

func newListBrandsCmd(client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list-brands",
		Short: "List all brands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			brands, err := client().ListBrands(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), brands)
		},
	}
}

func newDeactivateCmd(client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate NAME",
		Short: "Stop every campaign of a brand now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client().Deactivate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func parseAmount(what, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return v, nil
}

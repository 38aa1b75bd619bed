package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"adbudget/internal/adapter/httpclient"
)

// envConfig holds the defaults budgetctl reads from the environment.
type envConfig struct {
	Server string `env:"BUDGETCTL_SERVER" envDefault:"http://localhost:8080"`
}

func loadEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func newRootCmd(cfg envConfig) *cobra.Command {
	var server string

	root := &cobra.Command{
		Use:   "budgetctl",
		Short: "Manage brand budgets and campaigns on a budget daemon",
		Long: `budgetctl submits budget operations to a running budgetd.

Brands are created with a monthly and a daily budget and a list of
campaigns, each with one or more hour windows. Spend recorded against a
brand counts toward both budgets; reaching either one stops all of the
brand's campaigns until the next reset and status check.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&server, "server", cfg.Server, "budgetd base URL (env BUDGETCTL_SERVER)")

	client := func() *httpclient.Client {
		return httpclient.New(server, nil)
	}
	root.AddCommand(
		newInitBrandCmd(client),
		newUpdateSpendCmd(client),
		newResetDailyCmd(client),
		newResetMonthlyCmd(client),
		newCheckStatusCmd(client),
		newGetBrandCmd(client),
		newListBrandsCmd(client),
		newDeactivateCmd(client),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

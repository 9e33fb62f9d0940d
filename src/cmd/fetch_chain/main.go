package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantgate/marketdata/src/marketmodels"
	"github.com/quantgate/marketdata/src/rest"
	"github.com/quantgate/marketdata/src/utils"
)

type RunArgs struct {
	GoEnv         string
	Underlying    string
	ExpirationGTE string
	ExpirationLTE string
	Expired       bool
}

var runCmd = &cobra.Command{
	Use:   "fetch_chain --underlying SPY --expiration-gte 2025-12-01 --expiration-lte 2025-12-31",
	Short: "List an underlying's option contracts",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		underlying, err := cmd.Flags().GetString("underlying")
		if err != nil {
			log.Fatalf("error getting underlying: %v", err)
		}

		expirationGTE, err := cmd.Flags().GetString("expiration-gte")
		if err != nil {
			log.Fatalf("error getting expiration-gte: %v", err)
		}

		expirationLTE, err := cmd.Flags().GetString("expiration-lte")
		if err != nil {
			log.Fatalf("error getting expiration-lte: %v", err)
		}

		expired, err := cmd.Flags().GetBool("expired")
		if err != nil {
			log.Fatalf("error getting expired: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:         goEnv,
			Underlying:    underlying,
			ExpirationGTE: expirationGTE,
			ExpirationLTE: expirationLTE,
			Expired:       expired,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("Run: failed to get working directory: %w", err)
	}

	if err := utils.InitEnvironmentVariables(projectDir, args.GoEnv); err != nil {
		log.Warnf("Run: no env file loaded: %v", err)
	}

	cfg, err := utils.LoadConfig("marketdata.yaml")
	if err != nil {
		return fmt.Errorf("Run: failed to load config: %w", err)
	}

	apiKey, err := cfg.APIKey()
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = rest.DefaultBaseURL
	}

	client := rest.NewClientWithBaseURL(apiKey, baseURL)

	underlying, err := marketmodels.NewStockSymbol(args.Underlying)
	if err != nil {
		return fmt.Errorf("Run: invalid --underlying: %w", err)
	}

	req := rest.ListOptionContractsRequest{
		UnderlyingTicker: underlying,
		Expired:          args.Expired,
		Order:            "asc",
		Sort:             "strike_price",
		Limit:            1000,
	}

	if args.ExpirationGTE != "" {
		gte, err := marketmodels.NewDate(args.ExpirationGTE)
		if err != nil {
			return fmt.Errorf("Run: invalid --expiration-gte: %w", err)
		}
		req.ExpirationDateGTE = *gte
	}

	if args.ExpirationLTE != "" {
		lte, err := marketmodels.NewDate(args.ExpirationLTE)
		if err != nil {
			return fmt.Errorf("Run: invalid --expiration-lte: %w", err)
		}
		req.ExpirationDateLTE = *lte
	}

	result, err := client.ListOptionContracts(context.Background(), req)
	if err != nil {
		return fmt.Errorf("Run: failed to list contracts: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Ticker", "Type", "Expiration", "Strike"})

	for _, contract := range result.Results {
		ticker, err := contract.ToTicker()
		if err != nil {
			log.Warnf("Run: skipping contract %v: %v", contract.Ticker, err)
			continue
		}

		table.Append([]string{
			string(contract.Ticker),
			string(ticker.OptionType),
			ticker.Expiration.ToString(),
			fmt.Sprintf("%.3f", ticker.Strike),
		})
	}

	table.Render()

	fmt.Printf("%d contracts\n", result.ResultsCount)

	return nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("underlying", "", "The underlying stock symbol.")
	runCmd.PersistentFlags().String("expiration-gte", "", "Only contracts expiring on or after this date.")
	runCmd.PersistentFlags().String("expiration-lte", "", "Only contracts expiring on or before this date.")
	runCmd.PersistentFlags().Bool("expired", false, "Include expired contracts.")

	runCmd.MarkPersistentFlagRequired("underlying")

	runCmd.Execute()
}

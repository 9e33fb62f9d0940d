package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantgate/marketdata/src/marketmodels"
	"github.com/quantgate/marketdata/src/rest"
	"github.com/quantgate/marketdata/src/utils"
)

type RunArgs struct {
	GoEnv  string
	Symbol string
	From   string
	To     string
	Period time.Duration
	OutDir string
}

type RunResult struct {
	CsvPath   string
	BarCount  int
	CloseMean float64
	CloseStd  float64
}

var runCmd = &cobra.Command{
	Use:   "fetch_bars --symbol O:SPY251219C00650500 --from 2025-11-01 --to 2025-12-01",
	Short: "Fetch aggregate bars for an option contract and export them to csv",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		from, err := cmd.Flags().GetString("from")
		if err != nil {
			log.Fatalf("error getting from: %v", err)
		}

		to, err := cmd.Flags().GetString("to")
		if err != nil {
			log.Fatalf("error getting to: %v", err)
		}

		period, err := cmd.Flags().GetDuration("period")
		if err != nil {
			log.Fatalf("error getting period: %v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		result, err := Run(RunArgs{
			GoEnv:  goEnv,
			Symbol: symbol,
			From:   from,
			To:     to,
			Period: period,
			OutDir: outDir,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Printf("Exported %d bars to %s (close mean %.4f, std %.4f)\n",
			result.BarCount, result.CsvPath, result.CloseMean, result.CloseStd)
	},
}

func Run(args RunArgs) (RunResult, error) {
	projectDir, err := os.Getwd()
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to get working directory: %w", err)
	}

	if err := utils.InitEnvironmentVariables(projectDir, args.GoEnv); err != nil {
		log.Warnf("Run: no env file loaded: %v", err)
	}

	cfg, err := utils.LoadConfig("marketdata.yaml")
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to load config: %w", err)
	}

	apiKey, err := cfg.APIKey()
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = rest.DefaultBaseURL
	}

	client := rest.NewClientWithBaseURL(apiKey, baseURL)

	from, err := marketmodels.NewDate(args.From)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: invalid --from: %w", err)
	}

	to, err := marketmodels.NewDate(args.To)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: invalid --to: %w", err)
	}

	timespan, err := marketmodels.NewTimespan(args.Period)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: invalid --period: %w", err)
	}

	symbol := marketmodels.OptionSymbol(args.Symbol)

	resp, err := client.GetAggregateBars(context.Background(), rest.GetAggregateBarsRequest{
		Ticker:   symbol,
		Timespan: timespan,
		From:     *from,
		To:       *to,
		Sort:     "asc",
		Limit:    50000,
	})

	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to fetch bars: %w", err)
	}

	csvPath, err := utils.ExportBarsToCsv(symbol, resp.Results, args.OutDir)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to export csv: %w", err)
	}

	mean, std, err := closeStats(resp.Results)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	return RunResult{
		CsvPath:   csvPath,
		BarCount:  len(resp.Results),
		CloseMean: mean,
		CloseStd:  std,
	}, nil
}

// closeStats summarizes the close prices. An empty bar set yields zero stats
// rather than an error, since the range may legitimately contain no trades.
func closeStats(bars []marketmodels.AggregateBarDTO) (float64, float64, error) {
	if len(bars) == 0 {
		return 0, 0, nil
	}

	closes := make([]float64, 0, len(bars))
	for _, b := range bars {
		closes = append(closes, b.Close)
	}

	mean, err := stats.Mean(closes)
	if err != nil {
		return 0, 0, fmt.Errorf("closeStats: failed to compute mean: %w", err)
	}

	std, err := stats.StandardDeviation(closes)
	if err != nil {
		return 0, 0, fmt.Errorf("closeStats: failed to compute standard deviation: %w", err)
	}

	return mean, std, nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("symbol", "", "The full option symbol to fetch.")
	runCmd.PersistentFlags().String("from", "", "The start date, e.g. 2025-11-01.")
	runCmd.PersistentFlags().String("to", "", "The end date, e.g. 2025-12-01.")
	runCmd.PersistentFlags().Duration("period", 15*time.Minute, "The aggregate window, e.g. 15m or 24h.")
	runCmd.PersistentFlags().String("outDir", "export", "The directory to write the csv to.")

	runCmd.MarkPersistentFlagRequired("symbol")
	runCmd.MarkPersistentFlagRequired("from")
	runCmd.MarkPersistentFlagRequired("to")

	runCmd.Execute()
}

package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantgate/marketdata/src/marketmodels"
)

type RunArgs struct {
	Symbol     string
	Underlying string
	Expiration string
	OptionType string
	Strike     float64
}

var runCmd = &cobra.Command{
	Use:   "option_ticker [--symbol O:UBER220121C00050000 | --underlying UBER --expiration 2022-01-21 --type call --strike 50]",
	Short: "Encode or decode OCC option ticker symbols",
	Run: func(cmd *cobra.Command, args []string) {
		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		underlying, err := cmd.Flags().GetString("underlying")
		if err != nil {
			log.Fatalf("error getting underlying: %v", err)
		}

		expiration, err := cmd.Flags().GetString("expiration")
		if err != nil {
			log.Fatalf("error getting expiration: %v", err)
		}

		optionType, err := cmd.Flags().GetString("type")
		if err != nil {
			log.Fatalf("error getting type: %v", err)
		}

		strike, err := cmd.Flags().GetFloat64("strike")
		if err != nil {
			log.Fatalf("error getting strike: %v", err)
		}

		if err := Run(RunArgs{
			Symbol:     symbol,
			Underlying: underlying,
			Expiration: expiration,
			OptionType: optionType,
			Strike:     strike,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	symbol := marketmodels.OptionSymbol(args.Symbol)

	if args.Symbol == "" {
		date, err := marketmodels.NewDate(args.Expiration)
		if err != nil {
			return fmt.Errorf("Run: invalid --expiration: %w", err)
		}

		symbol, err = marketmodels.NewOptionTickerBuilder().
			WithUnderlying(args.Underlying).
			WithExpiration(*date).
			WithOptionType(marketmodels.OptionType(args.OptionType)).
			WithStrike(args.Strike).
			Build()

		if err != nil {
			return fmt.Errorf("Run: failed to build symbol: %w", err)
		}
	}

	ticker, err := marketmodels.NewOptionTicker(symbol)
	if err != nil {
		return fmt.Errorf("Run: failed to parse %v: %w", symbol, err)
	}

	description, err := symbol.Description()
	if err != nil {
		return fmt.Errorf("Run: failed to describe %v: %w", symbol, err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Field", "Value"})

	table.Append([]string{"symbol", string(symbol)})
	table.Append([]string{"underlying", string(ticker.Underlying)})
	table.Append([]string{"expiration", ticker.Expiration.ToString()})
	table.Append([]string{"type", string(ticker.OptionType)})
	table.Append([]string{"strike", fmt.Sprintf("%.3f", ticker.Strike)})
	table.Append([]string{"description", description})

	table.Render()

	return nil
}

func main() {
	runCmd.PersistentFlags().String("symbol", "", "A full option symbol to decode.")
	runCmd.PersistentFlags().String("underlying", "", "The underlying stock symbol.")
	runCmd.PersistentFlags().String("expiration", "", "The expiration date, e.g. 2022-01-21.")
	runCmd.PersistentFlags().String("type", "call", "The option type: call or put.")
	runCmd.PersistentFlags().Float64("strike", 0, "The strike price.")

	runCmd.Execute()
}

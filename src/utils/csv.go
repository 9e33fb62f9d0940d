package utils

import (
	"fmt"
	"os"
	"path"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/quantgate/marketdata/src/marketmodels"
)

type csvBarRow struct {
	Timestamp string  `csv:"timestamp"`
	Open      float64 `csv:"open"`
	High      float64 `csv:"high"`
	Low       float64 `csv:"low"`
	Close     float64 `csv:"close"`
	Volume    float64 `csv:"volume"`
	Vwap      float64 `csv:"vwap"`
	Count     int     `csv:"count"`
}

// ExportBarsToCsv writes aggregate bars for one contract to
// <outDir>/<symbol no prefix>.csv and returns the file path.
func ExportBarsToCsv(symbol marketmodels.OptionSymbol, bars []marketmodels.AggregateBarDTO, outDir string) (string, error) {
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return "", fmt.Errorf("ExportBarsToCsv: failed to create %s: %w", outDir, err)
		}
	}

	rows := make([]*csvBarRow, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, &csvBarRow{
			Timestamp: b.Time().Format("2006-01-02 15:04:05"),
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    b.Volume,
			Vwap:      b.Vwap,
			Count:     b.Count,
		})
	}

	fname := path.Join(outDir, fmt.Sprintf("%s.csv", symbol.NoPrefix()))

	f, err := os.Create(fname)
	if err != nil {
		return "", fmt.Errorf("ExportBarsToCsv: failed to create %s: %w", fname, err)
	}

	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return "", fmt.Errorf("ExportBarsToCsv: failed to write csv: %w", err)
	}

	log.Infof("exported %d bars to %s", len(rows), fname)

	return fname, nil
}

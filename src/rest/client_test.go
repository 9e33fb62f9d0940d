package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgate/marketdata/src/marketmodels"
)

func TestGetAggregateBars(t *testing.T) {
	t.Run("fetches and decodes bars", func(t *testing.T) {
		var gotPath string
		var gotQuery map[string][]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query()

			fmt.Fprint(w, `{
				"ticker": "O:SPY251219C00650500",
				"queryCount": 2,
				"resultsCount": 2,
				"adjusted": false,
				"results": [
					{"v": 100, "o": 1.25, "c": 1.30, "h": 1.35, "l": 1.20, "t": 1764633600000, "n": 12, "vw": 1.28},
					{"v": 80, "o": 1.30, "c": 1.32, "h": 1.40, "l": 1.29, "t": 1764634500000, "n": 9, "vw": 1.33}
				],
				"status": "OK"
			}`)
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", server.URL)

		resp, err := client.GetAggregateBars(context.Background(), GetAggregateBarsRequest{
			Ticker:   "O:SPY251219C00650500",
			Timespan: marketmodels.Timespan{Multiplier: 15, Unit: marketmodels.TimespanUnitMinute},
			From:     marketmodels.Date{Year: 2025, Month: 12, Day: 1},
			To:       marketmodels.Date{Year: 2025, Month: 12, Day: 2},
			Sort:     "asc",
			Limit:    50000,
		})

		require.Nil(t, err)
		assert.Equal(t, "/v2/aggs/ticker/O:SPY251219C00650500/range/15/minute/2025-12-01/2025-12-02", gotPath)
		assert.Equal(t, []string{"test-key"}, gotQuery["apiKey"])
		assert.Equal(t, []string{"asc"}, gotQuery["sort"])
		assert.Equal(t, []string{"50000"}, gotQuery["limit"])
		assert.Equal(t, 2, resp.ResultsCount)
		assert.Equal(t, 1.30, resp.Results[0].Close)
	})

	t.Run("rejects a bad ticker before any wire call", func(t *testing.T) {
		client := NewClientWithBaseURL("test-key", "http://127.0.0.1:1")

		_, err := client.GetAggregateBars(context.Background(), GetAggregateBarsRequest{
			Ticker:   "INVALID",
			Timespan: marketmodels.Timespan{Multiplier: 1, Unit: marketmodels.TimespanUnitDay},
			From:     marketmodels.Date{Year: 2025, Month: 12, Day: 1},
			To:       marketmodels.Date{Year: 2025, Month: 12, Day: 2},
		})

		assert.ErrorIs(t, err, marketmodels.ErrMissingPrefix)
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		client := NewClientWithBaseURL("test-key", "http://127.0.0.1:1")

		_, err := client.GetAggregateBars(context.Background(), GetAggregateBarsRequest{
			Ticker:   "O:SPY251219C00650500",
			Timespan: marketmodels.Timespan{Multiplier: 1, Unit: marketmodels.TimespanUnitDay},
			From:     marketmodels.Date{Year: 2025, Month: 12, Day: 2},
			To:       marketmodels.Date{Year: 2025, Month: 12, Day: 1},
		})

		assert.NotNil(t, err)
	})

	t.Run("propagates http failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", server.URL)

		_, err := client.GetAggregateBars(context.Background(), GetAggregateBarsRequest{
			Ticker:   "O:SPY251219C00650500",
			Timespan: marketmodels.Timespan{Multiplier: 1, Unit: marketmodels.TimespanUnitDay},
			From:     marketmodels.Date{Year: 2025, Month: 12, Day: 1},
			To:       marketmodels.Date{Year: 2025, Month: 12, Day: 2},
		})

		assert.NotNil(t, err)
	})
}

func TestGetDailyOpenClose(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/open-close/O:UBER220121C00050000/2022-01-10", r.URL.Path)

		fmt.Fprint(w, `{
			"status": "OK",
			"from": "2022-01-10",
			"symbol": "O:UBER220121C00050000",
			"open": 1.10, "high": 1.50, "low": 1.05, "close": 1.40, "volume": 250
		}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	dto, err := client.GetDailyOpenClose(context.Background(), GetDailyOpenCloseRequest{
		Ticker: "O:UBER220121C00050000",
		Date:   marketmodels.Date{Year: 2022, Month: 1, Day: 10},
	})

	require.Nil(t, err)
	assert.Equal(t, marketmodels.OptionSymbol("O:UBER220121C00050000"), dto.Symbol)
	assert.Equal(t, 1.40, dto.Close)
}

func TestGetLastTrade(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/last/trade/O:F211119P00014000", r.URL.Path)

		fmt.Fprint(w, `{
			"status": "OK",
			"request_id": "abc123",
			"results": {"T": "O:F211119P00014000", "p": 0.95, "s": 3, "t": 1637332200000000000, "x": 312}
		}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	trade, err := client.GetLastTrade(context.Background(), "O:F211119P00014000")
	require.Nil(t, err)
	assert.Equal(t, 0.95, trade.Price)
	assert.Equal(t, marketmodels.OptionSymbol("O:F211119P00014000"), trade.Ticker)
}

func TestGetOptionContract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/reference/options/contracts/O:UBER220121C00050000", r.URL.Path)

		fmt.Fprint(w, `{
			"status": "OK",
			"results": {
				"contract_type": "call",
				"exercise_style": "american",
				"expiration_date": "2022-01-21",
				"shares_per_contract": 100,
				"strike_price": 50,
				"ticker": "O:UBER220121C00050000",
				"underlying_ticker": "UBER"
			}
		}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	contract, err := client.GetOptionContract(context.Background(), "O:UBER220121C00050000")
	require.Nil(t, err)
	assert.Equal(t, marketmodels.OptionTypeCall, contract.ContractType)
	assert.Equal(t, 50.0, contract.StrikePrice)

	ticker, err := contract.ToTicker()
	require.Nil(t, err)
	assert.Equal(t, marketmodels.StockSymbol("UBER"), ticker.Underlying)
	assert.Equal(t, marketmodels.Date{Year: 2022, Month: 1, Day: 21}, ticker.Expiration)
}

func TestGetOptionContractSnapshotBySymbol(t *testing.T) {
	t.Run("derives the underlying path segment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v3/snapshot/options/SPY/O:SPY251219C00650500", r.URL.Path)

			fmt.Fprint(w, `{
				"status": "OK",
				"results": {
					"break_even_price": 657.2,
					"implied_volatility": 0.22,
					"open_interest": 1200,
					"details": {
						"contract_type": "call",
						"expiration_date": "2025-12-19",
						"strike_price": 650.5,
						"ticker": "O:SPY251219C00650500",
						"underlying_ticker": "SPY"
					},
					"greeks": {"delta": 0.45, "gamma": 0.02, "theta": -0.08, "vega": 0.11},
					"last_quote": {"ask": 6.8, "bid": 6.6, "midpoint": 6.7},
					"underlying_asset": {"price": 648.1, "ticker": "SPY"}
				}
			}`)
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", server.URL)

		snapshot, err := client.GetOptionContractSnapshotBySymbol(context.Background(), "O:SPY251219C00650500")
		require.Nil(t, err)
		assert.Equal(t, 0.45, snapshot.Greeks.Delta)
		assert.Equal(t, marketmodels.StockSymbol("SPY"), snapshot.UnderlyingAsset.Ticker)
	})

	t.Run("fails without a digit boundary", func(t *testing.T) {
		client := NewClientWithBaseURL("test-key", "http://127.0.0.1:1")

		_, err := client.GetOptionContractSnapshotBySymbol(context.Background(), "O:ABCDEFG251219C00650500")
		assert.ErrorIs(t, err, marketmodels.ErrUnderlyingNotFound)
	})
}

func TestListOptionContracts(t *testing.T) {
	t.Run("walks next_url pages", func(t *testing.T) {
		var server *httptest.Server

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, []string{"UBER"}, r.URL.Query()["underlying_ticker"])

			if r.URL.Query().Get("cursor") == "page2" {
				fmt.Fprint(w, `{
					"status": "OK",
					"results": [
						{"contract_type": "put", "expiration_date": "2022-01-21", "strike_price": 45, "ticker": "O:UBER220121P00045000", "underlying_ticker": "UBER"}
					]
				}`)
				return
			}

			fmt.Fprintf(w, `{
				"status": "OK",
				"results": [
					{"contract_type": "call", "expiration_date": "2022-01-21", "strike_price": 50, "ticker": "O:UBER220121C00050000", "underlying_ticker": "UBER"}
				],
				"next_url": "%s/v3/reference/options/contracts?underlying_ticker=UBER&cursor=page2"
			}`, server.URL)
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", server.URL)

		result, err := client.ListOptionContracts(context.Background(), ListOptionContractsRequest{
			UnderlyingTicker: "UBER",
			Limit:            1000,
		})

		require.Nil(t, err)
		assert.Equal(t, 2, result.ResultsCount)
		assert.Equal(t, marketmodels.OptionSymbol("O:UBER220121C00050000"), result.Results[0].Ticker)
		assert.Equal(t, marketmodels.OptionSymbol("O:UBER220121P00045000"), result.Results[1].Ticker)
	})

	t.Run("rejects a missing underlying", func(t *testing.T) {
		client := NewClientWithBaseURL("test-key", "http://127.0.0.1:1")

		_, err := client.ListOptionContracts(context.Background(), ListOptionContractsRequest{})
		assert.ErrorIs(t, err, marketmodels.ErrInvalidUnderlying)
	})
}

func TestListQuotes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/quotes/O:SPY251219C00650500", r.URL.Path)

		fmt.Fprint(w, `{
			"status": "OK",
			"results": [
				{"ask_price": 6.8, "ask_size": 10, "bid_price": 6.6, "bid_size": 12, "sip_timestamp": 1764633600000000000}
			]
		}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	result, err := client.ListQuotes(context.Background(), ListQuotesRequest{
		Ticker: "O:SPY251219C00650500",
		Limit:  100,
	})

	require.Nil(t, err)
	require.Equal(t, 1, result.ResultsCount)
	assert.Equal(t, 6.7, result.Results[0].Midpoint())
}

func TestListTrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/trades/O:SPY251219C00650500", r.URL.Path)
		assert.Equal(t, []string{"2025-12-01"}, r.URL.Query()["timestamp.gte"])

		fmt.Fprint(w, `{
			"status": "OK",
			"results": [
				{"price": 6.7, "size": 2, "exchange": 312, "sip_timestamp": 1764633600000000000}
			]
		}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	result, err := client.ListTrades(context.Background(), ListTradesRequest{
		Ticker:       "O:SPY251219C00650500",
		TimestampGTE: marketmodels.Date{Year: 2025, Month: 12, Day: 1},
		Limit:        100,
	})

	require.Nil(t, err)
	require.Equal(t, 1, result.ResultsCount)
	assert.Equal(t, 6.7, result.Results[0].Price)
}

package usdt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const (
	bybitAPIBase      = "https://api.bybit.com"
	orderbookEndpoint = "/v5/market/orderbook"

	defaultSymbol = "USDTUAH"
	bidDepth      = 5
)

type orderbookResponse struct {
	RetCode int    `json:"retCode"`
	RetMsg  string `json:"retMsg"`
	Result  struct {
		Symbol string     `json:"s"`
		Bids   [][]string `json:"b"`
		Asks   [][]string `json:"a"`
	} `json:"result"`
}

// RateSource suggests a current USDT/UAH market rate from the Bybit
// spot orderbook. The suggestion is informational, the effective rate
// is always the one the admin sets explicitly.
type RateSource struct {
	client *http.Client
	symbol string
}

func NewRateSource() *RateSource {
	return &RateSource{
		client: &http.Client{Timeout: 10 * time.Second},
		symbol: defaultSymbol,
	}
}

// SuggestRate returns the average price of the top bid orders.
func (s *RateSource) SuggestRate(ctx context.Context) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s%s?category=spot&symbol=%s&limit=%d",
		bybitAPIBase, orderbookEndpoint, s.symbol, bidDepth)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	var orderbook orderbookResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderbook); err != nil {
		return decimal.Zero, err
	}
	if orderbook.RetCode != 0 {
		return decimal.Zero, fmt.Errorf("bybit api: %s", orderbook.RetMsg)
	}

	return averageBidPrice(orderbook.Result.Bids, bidDepth)
}

func averageBidPrice(bids [][]string, count int) (decimal.Decimal, error) {
	if len(bids) == 0 {
		return decimal.Zero, fmt.Errorf("empty orderbook")
	}
	if count > len(bids) {
		count = len(bids)
	}

	sum := decimal.Zero
	valid := 0
	for i := 0; i < count; i++ {
		if len(bids[i]) < 2 {
			continue
		}
		price, err := decimal.NewFromString(bids[i][0])
		if err != nil {
			continue
		}
		sum = sum.Add(price)
		valid++
	}
	if valid == 0 {
		return decimal.Zero, fmt.Errorf("no parsable bid prices")
	}

	return sum.Div(decimal.NewFromInt(int64(valid))), nil
}

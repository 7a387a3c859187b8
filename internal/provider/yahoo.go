package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/tidwall/gjson"

	"DaxBoard/internal/model"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooFetcher creates a new Yahoo Finance fetcher. baseURL
// overrides the public endpoint (mirrors, tests); empty means default.
func NewYahooFetcher(baseURL, proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: baseURL,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
				Adjclose []struct {
					Adjclose []interface{} `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("yahoo: symbol not found: %w", ErrNoData)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// FetchPriceSeries downloads OHLCV bars plus the adjusted close for
// the date range. Null bars (holidays) are skipped and the result is
// sorted ascending by time.
func (f *YahooFetcher) FetchPriceSeries(ctx context.Context, symbol string, start, end time.Time, interval model.Interval) (*model.PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=%s&events=div%%2Csplits",
		f.BaseURL, url.PathEscape(symbol), start.Unix(), end.Unix(), interval)

	body, err := f.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s: %w", chart.Chart.Error.Description, ErrNoData)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, ErrNoData)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: missing quote block: %w", symbol, ErrNoData)
	}
	quote := result.Indicators.Quote[0]
	var adj []interface{}
	if len(result.Indicators.Adjclose) > 0 {
		adj = result.Indicators.Adjclose[0].Adjclose
	}

	bars := make([]model.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		ac := c
		if i < len(adj) {
			if v := toFloat(adj[i]); v != 0 {
				ac = v
			}
		}
		bars = append(bars, model.Bar{
			Time:     time.Unix(ts, 0).UTC(),
			Open:     o,
			High:     h,
			Low:      l,
			Close:    c,
			AdjClose: ac,
			Volume:   toFloat(quote.Volume[i]),
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: only null bars: %w", symbol, ErrNoData)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
}

// quoteSummary fetches the given modules for a symbol and returns the
// first result object. The response shape varies by module, so callers
// pick fields out with gjson instead of a typed decode.
func (f *YahooFetcher) quoteSummary(ctx context.Context, symbol, modules string) (gjson.Result, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		f.BaseURL, url.PathEscape(symbol), modules)

	body, err := f.get(ctx, u)
	if err != nil {
		return gjson.Result{}, err
	}
	root := gjson.ParseBytes(body)
	if errDesc := root.Get("quoteSummary.error.description"); errDesc.Exists() {
		return gjson.Result{}, fmt.Errorf("yahoo api error: %s: %w", errDesc.String(), ErrNoData)
	}
	result := root.Get("quoteSummary.result.0")
	if !result.Exists() {
		return gjson.Result{}, fmt.Errorf("yahoo summary %s: %w", symbol, ErrNoData)
	}
	return result, nil
}

// FetchOwnershipSnapshot downloads the major-holders breakdown. Labels
// keep the provider's formatted percentage strings.
func (f *YahooFetcher) FetchOwnershipSnapshot(ctx context.Context, symbol string) (*model.OwnershipSnapshot, error) {
	result, err := f.quoteSummary(ctx, symbol, "majorHoldersBreakdown")
	if err != nil {
		return nil, err
	}

	breakdown := result.Get("majorHoldersBreakdown")
	if !breakdown.Exists() {
		return nil, fmt.Errorf("yahoo holders %s: %w", symbol, ErrNoData)
	}
	figure := func(field string) model.OwnershipFigure {
		return model.OwnershipFigure{
			Label:   breakdown.Get(field + ".fmt").String(),
			Percent: breakdown.Get(field + ".raw").Float() * 100,
		}
	}
	return &model.OwnershipSnapshot{
		Insiders:           figure("insidersPercentHeld"),
		InstitutionsShares: figure("institutionsPercentHeld"),
		InstitutionsFloat:  figure("institutionsFloatPercentHeld"),
	}, nil
}

// FetchInstitutionalHolders downloads the institutional ownership list.
func (f *YahooFetcher) FetchInstitutionalHolders(ctx context.Context, symbol string) ([]model.InstitutionalHolder, error) {
	result, err := f.quoteSummary(ctx, symbol, "institutionOwnership")
	if err != nil {
		return nil, err
	}

	list := result.Get("institutionOwnership.ownershipList")
	holders := make([]model.InstitutionalHolder, 0, int(list.Get("#").Int()))
	list.ForEach(func(_, entry gjson.Result) bool {
		holders = append(holders, model.InstitutionalHolder{
			Holder:       entry.Get("organization").String(),
			Shares:       entry.Get("position.raw").Int(),
			DateReported: time.Unix(entry.Get("reportDate.raw").Int(), 0).UTC(),
			PctOut:       entry.Get("pctHeld.raw").Float() * 100,
		})
		return true
	})
	return holders, nil
}

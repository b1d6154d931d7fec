package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"GrowthBoard/internal/model"
)

// DefaultBaseURL is the public Yahoo Finance API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance public API:
// the v8 chart endpoint for daily bars and the v10 quoteSummary endpoint
// for company metadata.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy
// support. An empty baseURL selects the public host.
func NewYahooFetcher(baseURL, proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &YahooFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
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
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooRaw is Yahoo's wrapped numeric: {"raw": 2.5e12, "fmt": "2.5T"}.
// A nil pointer to it means the field was not provided.
type yahooRaw struct {
	Raw float64 `json:"raw"`
}

// yahooSummary is the response structure from the quoteSummary API with
// modules=assetProfile,price.
type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile *struct {
				Sector              string `json:"sector"`
				Industry            string `json:"industry"`
				LongBusinessSummary string `json:"longBusinessSummary"`
			} `json:"assetProfile"`
			Price *struct {
				LongName           string    `json:"longName"`
				ShortName          string    `json:"shortName"`
				MarketCap          *yahooRaw `json:"marketCap"`
				RegularMarketPrice *yahooRaw `json:"regularMarketPrice"`
			} `json:"price"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
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

func (f *YahooFetcher) get(u string) ([]byte, error) {
	req, err := http.NewRequest("GET", u, nil)
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
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// FetchSeries returns daily bars for [start, end]. Null bars (holidays,
// halted days) are skipped; the result is sorted by date ascending.
func (f *YahooFetcher) FetchSeries(ticker string, start, end time.Time) (model.PriceSeries, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("yahoo: end %s before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		f.BaseURL, url.PathEscape(ticker), start.Unix(), end.Unix())

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return model.PriceSeries{}, nil
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	// Yahoo pads partial days unevenly, so the quote arrays can be
	// shorter than the timestamp array. Trust only indexes present in
	// every parallel array.
	n := len(result.Timestamp)
	for _, col := range [][]interface{}{quote.Open, quote.High, quote.Low, quote.Close, quote.Volume} {
		if len(col) < n {
			n = len(col)
		}
	}
	bars := make(model.PriceSeries, 0, n)

	for i := 0; i < n; i++ {
		ts := result.Timestamp[i]
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.Bar{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(toFloat(quote.Volume[i])),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

// FetchMetadata returns the company snapshot for a ticker. Fields the
// provider omits stay at their absent values (empty string / nil).
func (f *YahooFetcher) FetchMetadata(ticker string) (model.CompanyMetadata, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=assetProfile%%2Cprice",
		f.BaseURL, url.PathEscape(ticker))

	body, err := f.get(u)
	if err != nil {
		return model.CompanyMetadata{}, err
	}

	var sum yahooSummary
	if err := json.Unmarshal(body, &sum); err != nil {
		return model.CompanyMetadata{}, fmt.Errorf("yahoo decode: %w", err)
	}
	if sum.QuoteSummary.Error != nil {
		return model.CompanyMetadata{}, fmt.Errorf("yahoo api error: %s", sum.QuoteSummary.Error.Description)
	}
	if len(sum.QuoteSummary.Result) == 0 {
		return model.CompanyMetadata{}, fmt.Errorf("yahoo: no summary for %s", ticker)
	}

	res := sum.QuoteSummary.Result[0]
	meta := model.CompanyMetadata{}
	if p := res.AssetProfile; p != nil {
		meta.Sector = p.Sector
		meta.Industry = p.Industry
		meta.Summary = p.LongBusinessSummary
	}
	if p := res.Price; p != nil {
		meta.Name = p.LongName
		if meta.Name == "" {
			meta.Name = p.ShortName
		}
		if p.MarketCap != nil {
			v := p.MarketCap.Raw
			meta.MarketCap = &v
		}
		if p.RegularMarketPrice != nil {
			v := p.RegularMarketPrice.Raw
			meta.CurrentPrice = &v
		}
	}
	if meta.Unknown() {
		return model.CompanyMetadata{}, fmt.Errorf("yahoo: no usable metadata for %s", ticker)
	}
	return meta, nil
}

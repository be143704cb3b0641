package newsapi

import (
	"net/url"
	"strconv"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
)

// StatusOK is the status value of a successful response body.
const StatusOK = "ok"

// Response is the body of a search response.
type Response struct {
	Status       string         `json:"status"`
	Code         string         `json:"code,omitempty"`
	Message      string         `json:"message,omitempty"`
	TotalResults int            `json:"totalResults"`
	Articles     []news.RawItem `json:"articles"`
}

// SearchParams are the query parameters of a search request.
type SearchParams struct {
	Query    string
	Sources  string
	Language string
	PageSize int
	SortBy   string
}

// Values encodes the parameters for a request URL. Empty values are omitted.
func (p SearchParams) Values() url.Values {
	v := url.Values{}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.Sources != "" {
		v.Set("sources", p.Sources)
	}
	if p.Language != "" {
		v.Set("language", p.Language)
	}
	if p.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if p.SortBy != "" {
		v.Set("sortBy", p.SortBy)
	}
	return v
}

package newsapi

import (
	"net/url"
	"strconv"
)

const maxPageSize = 100

// Query represents parameters for the NewsAPI /v2/everything endpoint.
// Zero-valued fields are omitted from the request.
type Query struct {
	Q              string
	Sources        string
	ExcludeDomains string
	Language       string
	PageSize       int
	SortBy         string
	From           string
}

// normalize clamps the page size to the API maximum. Parameter omission is
// handled at serialization time.
func (q Query) normalize() Query {
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q
}

// params serializes the query as request parameters, omitting empty values
func (q Query) params() url.Values {
	v := url.Values{}

	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}

	set("q", q.Q)
	set("sources", q.Sources)
	set("excludeDomains", q.ExcludeDomains)
	set("language", q.Language)
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	set("sortBy", q.SortBy)
	set("from", q.From)

	return v
}

// fingerprintArgs returns the normalized parameters as a map so the cache
// key is independent of how the query struct was populated
func (q Query) fingerprintArgs() map[string]string {
	args := make(map[string]string)
	for key, values := range q.params() {
		args[key] = values[0]
	}
	return args
}

package bible

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the scripture.api.bible v1 root
	DefaultBaseURL = "https://api.scripture.api.bible/v1"

	// HeaderAPIKey carries the credential on every request
	HeaderAPIKey = "api-key"
)

// Request is a fully built GET request: absolute URL plus headers
type Request struct {
	Operation Operation
	URL       string
	Header    http.Header
}

// BuildRequest translates an operation, its path IDs (in template order)
// and its options into a Request. It performs no I/O. The only failure is
// a MissingParameterError for an empty path ID; optional fields degrade to
// defaults or are left out.
func BuildRequest(baseURL, apiKey string, op Operation, params Params, ids ...string) (*Request, error) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %d", int(op))
	}

	path, err := expandPath(op, ep, ids)
	if err != nil {
		return nil, err
	}

	u := strings.TrimRight(baseURL, "/") + path
	if query := encodeQuery(ep.fields, params); query != "" {
		u += "?" + query
	}

	header := make(http.Header, 3)
	header.Set(HeaderAPIKey, apiKey)
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")

	return &Request{
		Operation: op,
		URL:       u,
		Header:    header,
	}, nil
}

// expandPath substitutes the positional ids into the endpoint's template
func expandPath(op Operation, ep endpoint, ids []string) (string, error) {
	path := ep.path
	for i, name := range ep.pathParams {
		var id string
		if i < len(ids) {
			id = strings.TrimSpace(ids[i])
		}
		if id == "" {
			return "", &MissingParameterError{Operation: op, Parameter: name}
		}
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(id), 1)
	}
	return path, nil
}

// encodeQuery renders the fields present in params as key=value pairs in
// the table's order. Pairs are collected first and joined once, so there
// is never a leading or trailing separator.
func encodeQuery(fields []field, params Params) string {
	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		raw, _ := params.lookup(f.keys...)

		var (
			value string
			ok    bool
		)
		switch f.kind {
		case kindBool:
			if boolValue(raw) {
				value, ok = "true", true
			}
		case kindNumber:
			if value, ok = numericValue(raw); !ok {
				value, ok = f.def, f.def != ""
			}
		case kindContentType:
			value, ok = string(ResolveContentType(raw)), true
		default:
			value, ok = stringValue(raw)
		}

		if ok {
			pairs = append(pairs, f.wire+"="+url.QueryEscape(value))
		}
	}
	return strings.Join(pairs, "&")
}

package bible

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-viper/mapstructure/v2"
)

// Response is a decoded JSON body, passed through as the API sent it.
// Successful bodies look like {"data": ..., "meta": ...}.
type Response map[string]any

// Data returns the "data" member of the response
func (r Response) Data() any {
	return r["data"]
}

// Meta returns the "meta" member of the response, or nil
func (r Response) Meta() map[string]any {
	meta, _ := r["meta"].(map[string]any)
	return meta
}

// Items returns the "data" member as a list of objects. Non-object
// elements are skipped; a single object is returned as a one-element list.
func (r Response) Items() []map[string]any {
	switch data := r.Data().(type) {
	case []any:
		items := make([]map[string]any, 0, len(data))
		for _, d := range data {
			if m, ok := d.(map[string]any); ok {
				items = append(items, m)
			}
		}
		return items
	case map[string]any:
		return []map[string]any{data}
	}
	return nil
}

// Decode copies the "data" member into v, matching json tags
func (r Response) Decode(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(r.Data()); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// DecodeData decodes the "data" member of r into a T
func DecodeData[T any](r Response) (T, error) {
	var out T
	err := r.Decode(&out)
	return out, err
}

// decodeResponse parses a JSON object body. An empty body yields nil.
// Numbers are kept as json.Number so large integers survive intact.
func decodeResponse(body []byte) (Response, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var resp Response
	if err := dec.Decode(&resp); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON object")
	}
	return resp, nil
}

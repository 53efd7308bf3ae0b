package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/deptboard/board-service/internal/domain"
)

// DecodeJSON decodes a request body into dst, rejecting trailing garbage.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return domain.ErrInvalidJSON(err)
	}
	// exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.ErrInvalidJSON(errors.New("unexpected trailing data"))
	}
	return nil
}

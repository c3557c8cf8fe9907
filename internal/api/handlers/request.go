package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

// ErrEmptyBody возвращается для запроса без тела
var ErrEmptyBody = errors.New("empty request body")

// DecodeJSON читает тело запроса в v. При синтаксической ошибке v не изменяется,
// поэтому обработчики могут продолжать работу с пустым объектом.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return ErrEmptyBody
	}

	return json.Unmarshal(body, v)
}

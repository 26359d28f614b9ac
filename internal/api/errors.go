package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RemoteError — не-2xx ответ сервиса. Detail берётся из тела ответа
// (поле detail), чтобы страницы могли показать текст вроде "商品不存在".
type RemoteError struct {
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("remote call failed with status %d", e.Status)
	}
	return fmt.Sprintf("remote call failed with status %d: %s", e.Status, e.Detail)
}

// IsNotFound сообщает, что сервис ответил 404.
func (e *RemoteError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

type errorBody struct {
	Detail string `json:"detail"`
}

func newRemoteError(resp *http.Response) *RemoteError {
	remoteErr := &RemoteError{Status: resp.StatusCode}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return remoteErr
	}

	var body errorBody
	if err := json.Unmarshal(payload, &body); err == nil && body.Detail != "" {
		remoteErr.Detail = body.Detail
		return remoteErr
	}
	if len(payload) > 0 {
		remoteErr.Detail = string(payload)
	}
	return remoteErr
}

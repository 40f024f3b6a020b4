package rest

import (
	"errors"
	"net/http"

	"github.com/spendsight/spendsight/pkg/backend"
)

// WriteError translates backend failures into an HTTP status: a RequestError
// keeps its upstream status (502 for transport failures), anything else is a
// 500. Handlers map their own client-side validation rejections to 400 before
// falling back here.
func WriteError(w http.ResponseWriter, err error) {
	var reqErr *backend.RequestError
	if errors.As(err, &reqErr) {
		status := reqErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		http.Error(w, reqErr.Message, status)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

package transport

import (
	"net/http"
	"strconv"

	"combo-catalog/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// urlParamID reads a numeric path parameter. A malformed value is reported
// with ok false after a 400 response has been written.
func urlParamID(w http.ResponseWriter, r *http.Request, name string) (id int64, ok bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		respondBadParam(w, name)
		return 0, false
	}
	return id, true
}

func respondBadParam(w http.ResponseWriter, name string) {
	middleware.RespondWithError(w, http.StatusBadRequest, "invalid "+name+" parameter")
}

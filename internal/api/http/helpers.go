package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/belajar-nihongo/nihongo-cms/internal/content"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// storeError maps store failures onto the API contract: missing rows are
// 404, everything else surfaces as a 500 with the underlying message.
func storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, content.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// chapterParam reads the chapter id from the URL. chi allows only one
// wildcard name per tree position, so chapter-scoped list routes that
// share a position with id-scoped mutations are registered as {id};
// standalone ones keep {chapterID}.
func chapterParam(r *http.Request) (int64, bool) {
	if id, ok := idParam(r, "chapterID"); ok {
		return id, true
	}
	return idParam(r, "id")
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return false
	}
	return true
}

func badID(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, "invalid id")
}

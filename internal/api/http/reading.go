package http

import (
	"net/http"

	"github.com/belajar-nihongo/nihongo-cms/internal/content"
)

func ListPublicReadingHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapterID, ok := chapterParam(r)
		if !ok {
			badID(w)
			return
		}
		ps, err := store.ListPublicReading(r.Context(), chapterID)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ps)
	}
}

func ListReadingAdminHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapterID, ok := chapterParam(r)
		if !ok {
			badID(w)
			return
		}
		ps, err := store.ListReadingAdmin(r.Context(), chapterID)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ps)
	}
}

// GetReadingPassageHandler serves one passage with its questions for the
// admin edit form; a missing id is a 404.
func GetReadingPassageHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		p, err := store.GetReadingPassage(r.Context(), id)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func CreateReadingPassageHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p content.ReadingPassage
		if !decodeBody(w, r, &p) {
			return
		}
		created, err := store.CreateReadingPassage(r.Context(), p)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateReadingPassageHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		var p content.ReadingPassage
		if !decodeBody(w, r, &p) {
			return
		}
		updated, err := store.UpdateReadingPassage(r.Context(), id, p)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteReadingPassageHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		if err := store.DeleteReadingPassage(r.Context(), id); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Wacana berhasil dihapus"})
	}
}

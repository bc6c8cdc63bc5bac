package http

import (
	"net/http"

	"github.com/belajar-nihongo/nihongo-cms/internal/content"
)

func ListChaptersHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapters, err := store.ListChapters(r.Context())
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, chapters)
	}
}

func CreateChapterHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c content.Chapter
		if !decodeBody(w, r, &c) {
			return
		}
		created, err := store.CreateChapter(r.Context(), c)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateChapterHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		var c content.Chapter
		if !decodeBody(w, r, &c) {
			return
		}
		updated, err := store.UpdateChapter(r.Context(), id, c)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteChapterHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		if err := store.DeleteChapter(r.Context(), id); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Bab berhasil dihapus"})
	}
}

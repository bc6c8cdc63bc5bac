package http

import (
	"net/http"

	"github.com/belajar-nihongo/nihongo-cms/internal/content"
)

// Listening exercises carry no answer key, so the public and admin
// listings share one projection; the admin route exists so the panel can
// keep using the gated prefix.

func ListListeningHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapterID, ok := chapterParam(r)
		if !ok {
			badID(w)
			return
		}
		es, err := store.ListListening(r.Context(), chapterID)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, es)
	}
}

func GetListeningHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		e, err := store.GetListening(r.Context(), id)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

func CreateListeningHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var e content.ListeningExercise
		if !decodeBody(w, r, &e) {
			return
		}
		created, err := store.CreateListening(r.Context(), e)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateListeningHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		var e content.ListeningExercise
		if !decodeBody(w, r, &e) {
			return
		}
		updated, err := store.UpdateListening(r.Context(), id, e)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteListeningHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		if err := store.DeleteListening(r.Context(), id); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Latihan choukai berhasil dihapus"})
	}
}

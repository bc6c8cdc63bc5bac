package http

import (
	"net/http"

	"github.com/belajar-nihongo/nihongo-cms/internal/content"
)

// ListPublicQuizzesHandler serves the learner view: the store's
// answer-free projection, never a filtered full record.
func ListPublicQuizzesHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapterID, ok := chapterParam(r)
		if !ok {
			badID(w)
			return
		}
		qs, err := store.ListPublicQuizzes(r.Context(), chapterID)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, qs)
	}
}

func ListQuizzesAdminHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapterID, ok := chapterParam(r)
		if !ok {
			badID(w)
			return
		}
		qs, err := store.ListQuizzesAdmin(r.Context(), chapterID)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, qs)
	}
}

func GetQuizHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		q, err := store.GetQuiz(r.Context(), id)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

func CreateQuizHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q content.Quiz
		if !decodeBody(w, r, &q) {
			return
		}
		created, err := store.CreateQuiz(r.Context(), q)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateQuizHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		var q content.Quiz
		if !decodeBody(w, r, &q) {
			return
		}
		updated, err := store.UpdateQuiz(r.Context(), id, q)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteQuizHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		if err := store.DeleteQuiz(r.Context(), id); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Soal berhasil dihapus"})
	}
}

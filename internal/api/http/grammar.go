package http

import (
	"net/http"

	"github.com/belajar-nihongo/nihongo-cms/internal/content"
)

func GetGrammarPatternHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		g, err := store.GetGrammarPattern(r.Context(), id)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}

func ListGrammarPatternsHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapterID, ok := chapterParam(r)
		if !ok {
			badID(w)
			return
		}
		gs, err := store.ListGrammarPatterns(r.Context(), chapterID)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, gs)
	}
}

func CreateGrammarPatternHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var g content.GrammarPattern
		if !decodeBody(w, r, &g) {
			return
		}
		created, err := store.CreateGrammarPattern(r.Context(), g)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateGrammarPatternHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		var g content.GrammarPattern
		if !decodeBody(w, r, &g) {
			return
		}
		updated, err := store.UpdateGrammarPattern(r.Context(), id, g)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteGrammarPatternHandler(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badID(w)
			return
		}
		if err := store.DeleteGrammarPattern(r.Context(), id); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Pola kalimat berhasil dihapus"})
	}
}

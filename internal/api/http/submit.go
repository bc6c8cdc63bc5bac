package http

import (
	"context"
	"net/http"

	"github.com/belajar-nihongo/nihongo-cms/internal/content"
)

type submitRequest struct {
	Answers []content.SubmittedAnswer `json:"answers"`
}

// SubmitQuizHandler grades a public quiz submission for a chapter.
// Anyone may submit; an unknown chapter simply grades against an empty
// key (total 0), matching the site's historical behavior.
func SubmitQuizHandler(store content.Store) http.HandlerFunc {
	return submitHandler(store.QuizAnswerKey)
}

// SubmitReadingHandler grades reading-comprehension answers; the key is
// every question of every passage in the chapter.
func SubmitReadingHandler(store content.Store) http.HandlerFunc {
	return submitHandler(store.ReadingAnswerKey)
}

func submitHandler(keyFn func(ctx context.Context, chapterID int64) ([]content.AnswerKey, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapterID, ok := chapterParam(r)
		if !ok {
			badID(w)
			return
		}
		var req submitRequest
		if !decodeBody(w, r, &req) {
			return
		}
		key, err := keyFn(r.Context(), chapterID)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, content.Score(key, req.Answers))
	}
}

package http

import (
	"net/http"

	"github.com/belajar-nihongo/nihongo-cms/internal/auth"
	"github.com/belajar-nihongo/nihongo-cms/internal/content"

	"github.com/go-chi/chi/v5"
)

// Mount wires the whole /api surface. Public routes go straight on the
// router; everything that mutates content or exposes answer keys sits
// behind RequireAuth.
func Mount(r chi.Router, store content.Store, authSvc *auth.Service) {
	r.Post("/api/login", auth.LoginHandler(authSvc))
	r.Get("/api/logout", auth.LogoutHandler())

	// Public learner surface. List-by-chapter routes that share a tree
	// position with id-scoped mutations are registered as {id}; the
	// handlers accept either wildcard name.
	r.Get("/api/chapters", ListChaptersHandler(store))
	r.Get("/api/vocabularies/{id}", ListVocabulariesHandler(store))
	r.Get("/api/grammar/{id}", ListGrammarPatternsHandler(store))
	r.Get("/api/quizzes/{id}", ListPublicQuizzesHandler(store))
	r.Post("/api/submit-quiz/{chapterID}", SubmitQuizHandler(store))
	r.Get("/api/reading/{chapterID}", ListPublicReadingHandler(store))
	r.Post("/api/submit-reading/{chapterID}", SubmitReadingHandler(store))
	r.Get("/api/listening/{id}", ListListeningHandler(store))

	// Admin surface.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAuth(authSvc))

		pr.Post("/api/chapters", CreateChapterHandler(store))
		pr.Put("/api/chapters/{id}", UpdateChapterHandler(store))
		pr.Delete("/api/chapters/{id}", DeleteChapterHandler(store))

		pr.Get("/api/vocabulary/{id}", GetVocabularyHandler(store))
		pr.Post("/api/vocabularies", CreateVocabularyHandler(store))
		pr.Put("/api/vocabularies/{id}", UpdateVocabularyHandler(store))
		pr.Delete("/api/vocabularies/{id}", DeleteVocabularyHandler(store))

		pr.Get("/api/grammar/entry/{id}", GetGrammarPatternHandler(store))
		pr.Post("/api/grammar", CreateGrammarPatternHandler(store))
		pr.Put("/api/grammar/{id}", UpdateGrammarPatternHandler(store))
		pr.Delete("/api/grammar/{id}", DeleteGrammarPatternHandler(store))

		pr.Get("/api/quiz/entry/{id}", GetQuizHandler(store))
		pr.Get("/api/admin/quizzes/{chapterID}", ListQuizzesAdminHandler(store))
		pr.Post("/api/quizzes", CreateQuizHandler(store))
		pr.Put("/api/quizzes/{id}", UpdateQuizHandler(store))
		pr.Delete("/api/quizzes/{id}", DeleteQuizHandler(store))

		pr.Get("/api/admin/reading/{chapterID}", ListReadingAdminHandler(store))
		pr.Get("/api/reading/passage/{id}", GetReadingPassageHandler(store))
		pr.Post("/api/reading/passage", CreateReadingPassageHandler(store))
		pr.Put("/api/reading/passage/{id}", UpdateReadingPassageHandler(store))
		pr.Delete("/api/reading/passage/{id}", DeleteReadingPassageHandler(store))

		pr.Get("/api/admin/listening/{chapterID}", ListListeningHandler(store))
		pr.Get("/api/listening/entry/{id}", GetListeningHandler(store))
		pr.Post("/api/listening", CreateListeningHandler(store))
		pr.Put("/api/listening/{id}", UpdateListeningHandler(store))
		pr.Delete("/api/listening/{id}", DeleteListeningHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
}

package content

import (
	"context"
	"errors"
)

// ErrNotFound is returned by single-entity lookups, updates and deletes
// when no row matches the id.
var ErrNotFound = errors.New("not found")

// Store is the persistence contract for all chapter content. Field
// values pass through verbatim: the store does not validate content
// shape, option counts or answer letters.
type Store interface {
	ListChapters(ctx context.Context) ([]Chapter, error)
	CreateChapter(ctx context.Context, c Chapter) (Chapter, error)
	UpdateChapter(ctx context.Context, id int64, c Chapter) (Chapter, error)
	DeleteChapter(ctx context.Context, id int64) error

	GetVocabulary(ctx context.Context, id int64) (Vocabulary, error)
	ListVocabularies(ctx context.Context, chapterID int64) ([]Vocabulary, error)
	CreateVocabulary(ctx context.Context, v Vocabulary) (Vocabulary, error)
	UpdateVocabulary(ctx context.Context, id int64, v Vocabulary) (Vocabulary, error)
	DeleteVocabulary(ctx context.Context, id int64) error

	GetGrammarPattern(ctx context.Context, id int64) (GrammarPattern, error)
	ListGrammarPatterns(ctx context.Context, chapterID int64) ([]GrammarPattern, error)
	CreateGrammarPattern(ctx context.Context, g GrammarPattern) (GrammarPattern, error)
	UpdateGrammarPattern(ctx context.Context, id int64, g GrammarPattern) (GrammarPattern, error)
	DeleteGrammarPattern(ctx context.Context, id int64) error

	// ListPublicQuizzes selects the answer-free projection; the admin
	// variant selects the full row. Redaction happens in the query, not
	// as a filter over the full record.
	ListPublicQuizzes(ctx context.Context, chapterID int64) ([]PublicQuiz, error)
	ListQuizzesAdmin(ctx context.Context, chapterID int64) ([]Quiz, error)
	GetQuiz(ctx context.Context, id int64) (Quiz, error)
	CreateQuiz(ctx context.Context, q Quiz) (Quiz, error)
	UpdateQuiz(ctx context.Context, id int64, q Quiz) (Quiz, error)
	DeleteQuiz(ctx context.Context, id int64) error

	// Answer keys for the scoring engine. An unknown chapter yields an
	// empty key, not an error.
	QuizAnswerKey(ctx context.Context, chapterID int64) ([]AnswerKey, error)
	ReadingAnswerKey(ctx context.Context, chapterID int64) ([]AnswerKey, error)

	ListPublicReading(ctx context.Context, chapterID int64) ([]PublicReadingPassage, error)
	ListReadingAdmin(ctx context.Context, chapterID int64) ([]ReadingPassage, error)
	GetReadingPassage(ctx context.Context, id int64) (ReadingPassage, error)
	// Create and Update write the passage and its whole question set in
	// one transaction; Update replaces the prior question set.
	CreateReadingPassage(ctx context.Context, p ReadingPassage) (ReadingPassage, error)
	UpdateReadingPassage(ctx context.Context, id int64, p ReadingPassage) (ReadingPassage, error)
	DeleteReadingPassage(ctx context.Context, id int64) error

	ListListening(ctx context.Context, chapterID int64) ([]ListeningExercise, error)
	GetListening(ctx context.Context, id int64) (ListeningExercise, error)
	CreateListening(ctx context.Context, e ListeningExercise) (ListeningExercise, error)
	UpdateListening(ctx context.Context, id int64, e ListeningExercise) (ListeningExercise, error)
	DeleteListening(ctx context.Context, id int64) error
}

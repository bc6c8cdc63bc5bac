package content

import (
	"context"
	"database/sql"
	"errors"
)

// SQLStore implements Store over database/sql. Placeholders use the $n
// form, which both the pgx stdlib driver and modernc sqlite accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) ListChapters(ctx context.Context) ([]Chapter, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description FROM chapters ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Chapter{}
	for rows.Next() {
		var c Chapter
		if err := rows.Scan(&c.ID, &c.Title, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateChapter(ctx context.Context, c Chapter) (Chapter, error) {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO chapters (title, description) VALUES ($1, $2) RETURNING id, title, description`,
		c.Title, c.Description).Scan(&c.ID, &c.Title, &c.Description)
	return c, err
}

func (s *SQLStore) UpdateChapter(ctx context.Context, id int64, c Chapter) (Chapter, error) {
	err := s.db.QueryRowContext(ctx,
		`UPDATE chapters SET title=$1, description=$2 WHERE id=$3 RETURNING id, title, description`,
		c.Title, c.Description, id).Scan(&c.ID, &c.Title, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return Chapter{}, ErrNotFound
	}
	return c, err
}

// DeleteChapter removes the chapter; vocabularies, grammar patterns,
// quizzes, passages (with questions) and listening exercises go with it
// through ON DELETE CASCADE.
func (s *SQLStore) DeleteChapter(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM chapters WHERE id=$1`, id)
}

func (s *SQLStore) GetVocabulary(ctx context.Context, id int64) (Vocabulary, error) {
	var v Vocabulary
	err := s.db.QueryRowContext(ctx,
		`SELECT id, chapter_id, content FROM vocabularies WHERE id=$1`, id).
		Scan(&v.ID, &v.ChapterID, &v.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return Vocabulary{}, ErrNotFound
	}
	return v, err
}

func (s *SQLStore) ListVocabularies(ctx context.Context, chapterID int64) ([]Vocabulary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chapter_id, content FROM vocabularies WHERE chapter_id=$1 ORDER BY id ASC`, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Vocabulary{}
	for rows.Next() {
		var v Vocabulary
		if err := rows.Scan(&v.ID, &v.ChapterID, &v.Content); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateVocabulary(ctx context.Context, v Vocabulary) (Vocabulary, error) {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO vocabularies (chapter_id, content) VALUES ($1, $2) RETURNING id, chapter_id, content`,
		v.ChapterID, v.Content).Scan(&v.ID, &v.ChapterID, &v.Content)
	return v, err
}

func (s *SQLStore) UpdateVocabulary(ctx context.Context, id int64, v Vocabulary) (Vocabulary, error) {
	err := s.db.QueryRowContext(ctx,
		`UPDATE vocabularies SET content=$1 WHERE id=$2 RETURNING id, chapter_id, content`,
		v.Content, id).Scan(&v.ID, &v.ChapterID, &v.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return Vocabulary{}, ErrNotFound
	}
	return v, err
}

func (s *SQLStore) DeleteVocabulary(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM vocabularies WHERE id=$1`, id)
}

func (s *SQLStore) GetGrammarPattern(ctx context.Context, id int64) (GrammarPattern, error) {
	var g GrammarPattern
	err := s.db.QueryRowContext(ctx,
		`SELECT id, chapter_id, pattern, explanation, example FROM grammar_patterns WHERE id=$1`, id).
		Scan(&g.ID, &g.ChapterID, &g.Pattern, &g.Explanation, &g.Example)
	if errors.Is(err, sql.ErrNoRows) {
		return GrammarPattern{}, ErrNotFound
	}
	return g, err
}

func (s *SQLStore) ListGrammarPatterns(ctx context.Context, chapterID int64) ([]GrammarPattern, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chapter_id, pattern, explanation, example FROM grammar_patterns WHERE chapter_id=$1 ORDER BY id ASC`,
		chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GrammarPattern{}
	for rows.Next() {
		var g GrammarPattern
		if err := rows.Scan(&g.ID, &g.ChapterID, &g.Pattern, &g.Explanation, &g.Example); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateGrammarPattern(ctx context.Context, g GrammarPattern) (GrammarPattern, error) {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO grammar_patterns (chapter_id, pattern, explanation, example)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, chapter_id, pattern, explanation, example`,
		g.ChapterID, g.Pattern, g.Explanation, g.Example).
		Scan(&g.ID, &g.ChapterID, &g.Pattern, &g.Explanation, &g.Example)
	return g, err
}

func (s *SQLStore) UpdateGrammarPattern(ctx context.Context, id int64, g GrammarPattern) (GrammarPattern, error) {
	err := s.db.QueryRowContext(ctx,
		`UPDATE grammar_patterns SET pattern=$1, explanation=$2, example=$3 WHERE id=$4
		 RETURNING id, chapter_id, pattern, explanation, example`,
		g.Pattern, g.Explanation, g.Example, id).
		Scan(&g.ID, &g.ChapterID, &g.Pattern, &g.Explanation, &g.Example)
	if errors.Is(err, sql.ErrNoRows) {
		return GrammarPattern{}, ErrNotFound
	}
	return g, err
}

func (s *SQLStore) DeleteGrammarPattern(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM grammar_patterns WHERE id=$1`, id)
}

func (s *SQLStore) ListPublicQuizzes(ctx context.Context, chapterID int64) ([]PublicQuiz, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chapter_id, question, option_a, option_b, option_c, option_d
		   FROM quizzes WHERE chapter_id=$1 ORDER BY id ASC`, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PublicQuiz{}
	for rows.Next() {
		var q PublicQuiz
		if err := rows.Scan(&q.ID, &q.ChapterID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListQuizzesAdmin(ctx context.Context, chapterID int64) ([]Quiz, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chapter_id, question, option_a, option_b, option_c, option_d, correct_answer
		   FROM quizzes WHERE chapter_id=$1 ORDER BY id ASC`, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Quiz{}
	for rows.Next() {
		var q Quiz
		if err := rows.Scan(&q.ID, &q.ChapterID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.CorrectAnswer); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetQuiz(ctx context.Context, id int64) (Quiz, error) {
	var q Quiz
	err := s.db.QueryRowContext(ctx,
		`SELECT id, chapter_id, question, option_a, option_b, option_c, option_d, correct_answer
		   FROM quizzes WHERE id=$1`, id).
		Scan(&q.ID, &q.ChapterID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.CorrectAnswer)
	if errors.Is(err, sql.ErrNoRows) {
		return Quiz{}, ErrNotFound
	}
	return q, err
}

func (s *SQLStore) CreateQuiz(ctx context.Context, q Quiz) (Quiz, error) {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO quizzes (chapter_id, question, option_a, option_b, option_c, option_d, correct_answer)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, chapter_id, question, option_a, option_b, option_c, option_d, correct_answer`,
		q.ChapterID, q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.CorrectAnswer).
		Scan(&q.ID, &q.ChapterID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.CorrectAnswer)
	return q, err
}

func (s *SQLStore) UpdateQuiz(ctx context.Context, id int64, q Quiz) (Quiz, error) {
	err := s.db.QueryRowContext(ctx,
		`UPDATE quizzes SET question=$1, option_a=$2, option_b=$3, option_c=$4, option_d=$5, correct_answer=$6
		  WHERE id=$7
		 RETURNING id, chapter_id, question, option_a, option_b, option_c, option_d, correct_answer`,
		q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.CorrectAnswer, id).
		Scan(&q.ID, &q.ChapterID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.CorrectAnswer)
	if errors.Is(err, sql.ErrNoRows) {
		return Quiz{}, ErrNotFound
	}
	return q, err
}

func (s *SQLStore) DeleteQuiz(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM quizzes WHERE id=$1`, id)
}

func (s *SQLStore) QuizAnswerKey(ctx context.Context, chapterID int64) ([]AnswerKey, error) {
	return s.answerKey(ctx,
		`SELECT id, correct_answer FROM quizzes WHERE chapter_id=$1`, chapterID)
}

func (s *SQLStore) ReadingAnswerKey(ctx context.Context, chapterID int64) ([]AnswerKey, error) {
	return s.answerKey(ctx,
		`SELECT q.id, q.correct_answer
		   FROM reading_questions q
		   JOIN reading_passages p ON p.id = q.passage_id
		  WHERE p.chapter_id=$1`, chapterID)
}

func (s *SQLStore) answerKey(ctx context.Context, query string, chapterID int64) ([]AnswerKey, error) {
	rows, err := s.db.QueryContext(ctx, query, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []AnswerKey{}
	for rows.Next() {
		var k AnswerKey
		if err := rows.Scan(&k.QuestionID, &k.CorrectAnswer); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListListening(ctx context.Context, chapterID int64) ([]ListeningExercise, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chapter_id, title, description, image_url, audio_url_1, audio_url_2, script
		   FROM listening_exercises WHERE chapter_id=$1 ORDER BY id ASC`, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ListeningExercise{}
	for rows.Next() {
		var e ListeningExercise
		if err := rows.Scan(&e.ID, &e.ChapterID, &e.Title, &e.Description, &e.ImageURL, &e.AudioURL1, &e.AudioURL2, &e.Script); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetListening(ctx context.Context, id int64) (ListeningExercise, error) {
	var e ListeningExercise
	err := s.db.QueryRowContext(ctx,
		`SELECT id, chapter_id, title, description, image_url, audio_url_1, audio_url_2, script
		   FROM listening_exercises WHERE id=$1`, id).
		Scan(&e.ID, &e.ChapterID, &e.Title, &e.Description, &e.ImageURL, &e.AudioURL1, &e.AudioURL2, &e.Script)
	if errors.Is(err, sql.ErrNoRows) {
		return ListeningExercise{}, ErrNotFound
	}
	return e, err
}

func (s *SQLStore) CreateListening(ctx context.Context, e ListeningExercise) (ListeningExercise, error) {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO listening_exercises (chapter_id, title, description, image_url, audio_url_1, audio_url_2, script)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, chapter_id, title, description, image_url, audio_url_1, audio_url_2, script`,
		e.ChapterID, e.Title, e.Description, e.ImageURL, e.AudioURL1, e.AudioURL2, e.Script).
		Scan(&e.ID, &e.ChapterID, &e.Title, &e.Description, &e.ImageURL, &e.AudioURL1, &e.AudioURL2, &e.Script)
	return e, err
}

func (s *SQLStore) UpdateListening(ctx context.Context, id int64, e ListeningExercise) (ListeningExercise, error) {
	err := s.db.QueryRowContext(ctx,
		`UPDATE listening_exercises
		    SET title=$1, description=$2, image_url=$3, audio_url_1=$4, audio_url_2=$5, script=$6
		  WHERE id=$7
		 RETURNING id, chapter_id, title, description, image_url, audio_url_1, audio_url_2, script`,
		e.Title, e.Description, e.ImageURL, e.AudioURL1, e.AudioURL2, e.Script, id).
		Scan(&e.ID, &e.ChapterID, &e.Title, &e.Description, &e.ImageURL, &e.AudioURL1, &e.AudioURL2, &e.Script)
	if errors.Is(err, sql.ErrNoRows) {
		return ListeningExercise{}, ErrNotFound
	}
	return e, err
}

func (s *SQLStore) DeleteListening(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM listening_exercises WHERE id=$1`, id)
}

func (s *SQLStore) deleteByID(ctx context.Context, query string, id int64) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package content

import (
	"context"
	"database/sql"
	"errors"
)

// Reading is fetched as two queries (passages, then questions keyed by
// passage id) merged in memory. A single outer-join aggregation would
// need a synthetic null-row cleanup for question-less passages; the
// two-query shape sidesteps that, and every passage carries a non-nil
// Questions slice so an empty set serializes as [].

func (s *SQLStore) ListReadingAdmin(ctx context.Context, chapterID int64) ([]ReadingPassage, error) {
	passages, order, err := s.readingPassages(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return []ReadingPassage{}, nil
	}

	byPassage, err := s.readingQuestions(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	out := make([]ReadingPassage, 0, len(order))
	for _, id := range order {
		p := passages[id]
		if qs, ok := byPassage[id]; ok {
			p.Questions = qs
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *SQLStore) ListPublicReading(ctx context.Context, chapterID int64) ([]PublicReadingPassage, error) {
	full, err := s.ListReadingAdmin(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	out := make([]PublicReadingPassage, 0, len(full))
	for _, p := range full {
		pub := PublicReadingPassage{
			ID:             p.ID,
			ChapterID:      p.ChapterID,
			PassageContent: p.PassageContent,
			Questions:      make([]PublicReadingQuestion, 0, len(p.Questions)),
		}
		for _, q := range p.Questions {
			pub.Questions = append(pub.Questions, PublicReadingQuestion{
				ID:           q.ID,
				QuestionText: q.QuestionText,
				OptionA:      q.OptionA,
				OptionB:      q.OptionB,
				OptionC:      q.OptionC,
				OptionD:      q.OptionD,
			})
		}
		out = append(out, pub)
	}
	return out, nil
}

func (s *SQLStore) readingPassages(ctx context.Context, chapterID int64) (map[int64]ReadingPassage, []int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chapter_id, passage_content FROM reading_passages WHERE chapter_id=$1 ORDER BY id ASC`,
		chapterID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	passages := map[int64]ReadingPassage{}
	order := []int64{}
	for rows.Next() {
		var p ReadingPassage
		if err := rows.Scan(&p.ID, &p.ChapterID, &p.PassageContent); err != nil {
			return nil, nil, err
		}
		p.Questions = []ReadingQuestion{}
		passages[p.ID] = p
		order = append(order, p.ID)
	}
	return passages, order, rows.Err()
}

func (s *SQLStore) readingQuestions(ctx context.Context, chapterID int64) (map[int64][]ReadingQuestion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT q.id, q.passage_id, q.question_text, q.option_a, q.option_b, q.option_c, q.option_d, q.correct_answer
		   FROM reading_questions q
		   JOIN reading_passages p ON p.id = q.passage_id
		  WHERE p.chapter_id=$1
		  ORDER BY q.id ASC`, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byPassage := map[int64][]ReadingQuestion{}
	for rows.Next() {
		var q ReadingQuestion
		if err := rows.Scan(&q.ID, &q.PassageID, &q.QuestionText, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.CorrectAnswer); err != nil {
			return nil, err
		}
		byPassage[q.PassageID] = append(byPassage[q.PassageID], q)
	}
	return byPassage, rows.Err()
}

func (s *SQLStore) GetReadingPassage(ctx context.Context, id int64) (ReadingPassage, error) {
	var p ReadingPassage
	err := s.db.QueryRowContext(ctx,
		`SELECT id, chapter_id, passage_content FROM reading_passages WHERE id=$1`, id).
		Scan(&p.ID, &p.ChapterID, &p.PassageContent)
	if errors.Is(err, sql.ErrNoRows) {
		return ReadingPassage{}, ErrNotFound
	}
	if err != nil {
		return ReadingPassage{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, passage_id, question_text, option_a, option_b, option_c, option_d, correct_answer
		   FROM reading_questions WHERE passage_id=$1 ORDER BY id ASC`, id)
	if err != nil {
		return ReadingPassage{}, err
	}
	defer rows.Close()

	p.Questions = []ReadingQuestion{}
	for rows.Next() {
		var q ReadingQuestion
		if err := rows.Scan(&q.ID, &q.PassageID, &q.QuestionText, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.CorrectAnswer); err != nil {
			return ReadingPassage{}, err
		}
		p.Questions = append(p.Questions, q)
	}
	return p, rows.Err()
}

func (s *SQLStore) CreateReadingPassage(ctx context.Context, p ReadingPassage) (ReadingPassage, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReadingPassage{}, err
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRowContext(ctx,
		`INSERT INTO reading_passages (chapter_id, passage_content) VALUES ($1, $2) RETURNING id`,
		p.ChapterID, p.PassageContent).Scan(&id); err != nil {
		return ReadingPassage{}, err
	}
	if err := insertReadingQuestions(ctx, tx, id, p.Questions); err != nil {
		return ReadingPassage{}, err
	}
	if err := tx.Commit(); err != nil {
		return ReadingPassage{}, err
	}
	return s.GetReadingPassage(ctx, id)
}

// UpdateReadingPassage rewrites the passage and replaces its whole
// question set (delete then reinsert) in one transaction, so readers
// never observe a partial question list.
func (s *SQLStore) UpdateReadingPassage(ctx context.Context, id int64, p ReadingPassage) (ReadingPassage, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReadingPassage{}, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE reading_passages SET passage_content=$1 WHERE id=$2`, p.PassageContent, id)
	if err != nil {
		return ReadingPassage{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ReadingPassage{}, err
	}
	if n == 0 {
		return ReadingPassage{}, ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM reading_questions WHERE passage_id=$1`, id); err != nil {
		return ReadingPassage{}, err
	}
	if err := insertReadingQuestions(ctx, tx, id, p.Questions); err != nil {
		return ReadingPassage{}, err
	}
	if err := tx.Commit(); err != nil {
		return ReadingPassage{}, err
	}
	return s.GetReadingPassage(ctx, id)
}

func (s *SQLStore) DeleteReadingPassage(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM reading_passages WHERE id=$1`, id)
}

func insertReadingQuestions(ctx context.Context, tx *sql.Tx, passageID int64, qs []ReadingQuestion) error {
	for _, q := range qs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO reading_questions (passage_id, question_text, option_a, option_b, option_c, option_d, correct_answer)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			passageID, q.QuestionText, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.CorrectAnswer); err != nil {
			return err
		}
	}
	return nil
}

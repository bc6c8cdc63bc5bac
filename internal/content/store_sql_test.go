package content_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/belajar-nihongo/nihongo-cms/internal/content"
	"github.com/belajar-nihongo/nihongo-cms/internal/db"
)

func newTestStore(t *testing.T) *content.SQLStore {
	t.Helper()
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "content.db") + "?_pragma=foreign_keys(1)"
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn, 1)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	if err := db.Migrate(ctx, dbh, db.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return content.NewSQLStore(dbh)
}

func mustChapter(t *testing.T, s *content.SQLStore, title string) content.Chapter {
	t.Helper()
	c, err := s.CreateChapter(context.Background(), content.Chapter{Title: title})
	if err != nil {
		t.Fatalf("create chapter: %v", err)
	}
	return c
}

func TestChapterRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := mustChapter(t, s, "Bab 1")
	if c.ID == 0 {
		t.Fatal("create did not assign an id")
	}

	updated, err := s.UpdateChapter(ctx, c.ID, content.Chapter{Title: "Bab 1", Description: "hiragana"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != "hiragana" {
		t.Fatalf("Description = %q after update", updated.Description)
	}

	chapters, err := s.ListChapters(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(chapters) != 1 || chapters[0].ID != c.ID {
		t.Fatalf("ListChapters = %+v", chapters)
	}

	if err := s.DeleteChapter(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteChapter(ctx, c.ID); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestChapterDeleteCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := mustChapter(t, s, "Bab 1")
	if _, err := s.CreateVocabulary(ctx, content.Vocabulary{ChapterID: c.ID, Content: "ねこ"}); err != nil {
		t.Fatalf("create vocabulary: %v", err)
	}
	if _, err := s.CreateGrammarPattern(ctx, content.GrammarPattern{ChapterID: c.ID, Pattern: "〜は〜です"}); err != nil {
		t.Fatalf("create grammar: %v", err)
	}
	if _, err := s.CreateQuiz(ctx, content.Quiz{ChapterID: c.ID, Question: "q", CorrectAnswer: "a"}); err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if _, err := s.CreateReadingPassage(ctx, content.ReadingPassage{
		ChapterID:      c.ID,
		PassageContent: "text",
		Questions:      []content.ReadingQuestion{{QuestionText: "rq", CorrectAnswer: "b"}},
	}); err != nil {
		t.Fatalf("create passage: %v", err)
	}
	if _, err := s.CreateListening(ctx, content.ListeningExercise{ChapterID: c.ID, Title: "choukai 1"}); err != nil {
		t.Fatalf("create listening: %v", err)
	}

	if err := s.DeleteChapter(ctx, c.ID); err != nil {
		t.Fatalf("delete chapter: %v", err)
	}

	if vs, _ := s.ListVocabularies(ctx, c.ID); len(vs) != 0 {
		t.Fatalf("vocabularies survived cascade: %+v", vs)
	}
	if gs, _ := s.ListGrammarPatterns(ctx, c.ID); len(gs) != 0 {
		t.Fatalf("grammar patterns survived cascade: %+v", gs)
	}
	if qs, _ := s.ListQuizzesAdmin(ctx, c.ID); len(qs) != 0 {
		t.Fatalf("quizzes survived cascade: %+v", qs)
	}
	if ps, _ := s.ListReadingAdmin(ctx, c.ID); len(ps) != 0 {
		t.Fatalf("passages survived cascade: %+v", ps)
	}
	if key, _ := s.ReadingAnswerKey(ctx, c.ID); len(key) != 0 {
		t.Fatalf("reading questions survived cascade: %+v", key)
	}
	if es, _ := s.ListListening(ctx, c.ID); len(es) != 0 {
		t.Fatalf("listening exercises survived cascade: %+v", es)
	}
}

func TestPublicQuizListingOmitsCorrectAnswer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := mustChapter(t, s, "Bab 1")
	if _, err := s.CreateQuiz(ctx, content.Quiz{
		ChapterID: c.ID, Question: "ねこ?", OptionA: "cat", OptionB: "dog",
		OptionC: "bird", OptionD: "fish", CorrectAnswer: "a",
	}); err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	public, err := s.ListPublicQuizzes(ctx, c.ID)
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	buf, _ := json.Marshal(public)
	if strings.Contains(string(buf), "correct_answer") {
		t.Fatalf("public listing leaks the answer key: %s", buf)
	}

	admin, err := s.ListQuizzesAdmin(ctx, c.ID)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(admin) != 1 || admin[0].CorrectAnswer != "a" {
		t.Fatalf("admin listing = %+v, want correct_answer 'a'", admin)
	}
}

func TestAnswerKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := mustChapter(t, s, "Bab 1")
	q1, _ := s.CreateQuiz(ctx, content.Quiz{ChapterID: c.ID, CorrectAnswer: "a"})
	q2, _ := s.CreateQuiz(ctx, content.Quiz{ChapterID: c.ID, CorrectAnswer: "b"})

	key, err := s.QuizAnswerKey(ctx, c.ID)
	if err != nil {
		t.Fatalf("quiz key: %v", err)
	}
	if len(key) != 2 || key[0].QuestionID != q1.ID || key[1].QuestionID != q2.ID {
		t.Fatalf("quiz key = %+v", key)
	}

	// Unknown chapter grades against an empty key, never an error.
	key, err = s.QuizAnswerKey(ctx, 9999)
	if err != nil {
		t.Fatalf("unknown chapter key err = %v", err)
	}
	if len(key) != 0 {
		t.Fatalf("unknown chapter key = %+v, want empty", key)
	}
}

func TestReadingPassageWithoutQuestionsIsEmptyList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := mustChapter(t, s, "Bab 1")
	if _, err := s.CreateReadingPassage(ctx, content.ReadingPassage{
		ChapterID:      c.ID,
		PassageContent: "no questions yet",
	}); err != nil {
		t.Fatalf("create passage: %v", err)
	}

	for _, view := range []string{"admin", "public"} {
		var buf []byte
		switch view {
		case "admin":
			ps, err := s.ListReadingAdmin(ctx, c.ID)
			if err != nil {
				t.Fatalf("admin list: %v", err)
			}
			if len(ps) != 1 || ps[0].Questions == nil || len(ps[0].Questions) != 0 {
				t.Fatalf("admin passage questions = %#v, want empty non-nil", ps[0].Questions)
			}
			buf, _ = json.Marshal(ps)
		case "public":
			ps, err := s.ListPublicReading(ctx, c.ID)
			if err != nil {
				t.Fatalf("public list: %v", err)
			}
			if len(ps) != 1 || ps[0].Questions == nil || len(ps[0].Questions) != 0 {
				t.Fatalf("public passage questions = %#v, want empty non-nil", ps[0].Questions)
			}
			buf, _ = json.Marshal(ps)
		}
		if !strings.Contains(string(buf), `"questions":[]`) {
			t.Fatalf("%s view serialized as %s, want \"questions\":[]", view, buf)
		}
	}
}

func TestReadingAggregationOrderAndProjection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := mustChapter(t, s, "Bab 1")
	p1, err := s.CreateReadingPassage(ctx, content.ReadingPassage{
		ChapterID:      c.ID,
		PassageContent: "first",
		Questions: []content.ReadingQuestion{
			{QuestionText: "q1", CorrectAnswer: "a"},
			{QuestionText: "q2", CorrectAnswer: "b"},
		},
	})
	if err != nil {
		t.Fatalf("create p1: %v", err)
	}
	p2, err := s.CreateReadingPassage(ctx, content.ReadingPassage{
		ChapterID:      c.ID,
		PassageContent: "second",
		Questions:      []content.ReadingQuestion{{QuestionText: "q3", CorrectAnswer: "c"}},
	})
	if err != nil {
		t.Fatalf("create p2: %v", err)
	}

	ps, err := s.ListReadingAdmin(ctx, c.ID)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(ps) != 2 || ps[0].ID != p1.ID || ps[1].ID != p2.ID {
		t.Fatalf("passage order = %+v", ps)
	}
	if len(ps[0].Questions) != 2 || ps[0].Questions[0].QuestionText != "q1" {
		t.Fatalf("p1 questions = %+v", ps[0].Questions)
	}
	if ps[0].Questions[0].PassageID != p1.ID {
		t.Fatalf("admin view must carry passage_id, got %+v", ps[0].Questions[0])
	}

	pub, err := s.ListPublicReading(ctx, c.ID)
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	buf, _ := json.Marshal(pub)
	if strings.Contains(string(buf), "correct_answer") {
		t.Fatalf("public reading leaks answer keys: %s", buf)
	}
	if len(pub[1].Questions) != 1 || pub[1].Questions[0].QuestionText != "q3" {
		t.Fatalf("public p2 questions = %+v", pub[1].Questions)
	}
}

func TestUpdateReadingPassageReplacesQuestionSet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := mustChapter(t, s, "Bab 1")
	p, err := s.CreateReadingPassage(ctx, content.ReadingPassage{
		ChapterID:      c.ID,
		PassageContent: "v1",
		Questions: []content.ReadingQuestion{
			{QuestionText: "old-1", CorrectAnswer: "a"},
			{QuestionText: "old-2", CorrectAnswer: "b"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	oldIDs := map[int64]bool{}
	for _, q := range p.Questions {
		oldIDs[q.ID] = true
	}

	updated, err := s.UpdateReadingPassage(ctx, p.ID, content.ReadingPassage{
		PassageContent: "v2",
		Questions: []content.ReadingQuestion{
			{QuestionText: "new-1", CorrectAnswer: "c"},
			{QuestionText: "new-2", CorrectAnswer: "d"},
			{QuestionText: "new-3", CorrectAnswer: "a"},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PassageContent != "v2" {
		t.Fatalf("PassageContent = %q", updated.PassageContent)
	}
	if len(updated.Questions) != 3 {
		t.Fatalf("question count = %d, want 3 (full replace)", len(updated.Questions))
	}
	seen := map[int64]bool{}
	for _, q := range updated.Questions {
		if oldIDs[q.ID] {
			t.Fatalf("old question id %d survived the replace", q.ID)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
	}

	key, err := s.ReadingAnswerKey(ctx, c.ID)
	if err != nil {
		t.Fatalf("reading key: %v", err)
	}
	if len(key) != 3 {
		t.Fatalf("reading key size = %d, want 3 (no orphans)", len(key))
	}
}

func TestUpdateReadingPassageNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateReadingPassage(context.Background(), 42, content.ReadingPassage{PassageContent: "x"})
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSingleEntityLookupsReportNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.GetVocabulary(ctx, 1); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("vocabulary err = %v", err)
	}
	if _, err := s.GetGrammarPattern(ctx, 1); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("grammar err = %v", err)
	}
	if _, err := s.GetQuiz(ctx, 1); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("quiz err = %v", err)
	}
	if _, err := s.GetReadingPassage(ctx, 1); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("passage err = %v", err)
	}
	if _, err := s.GetListening(ctx, 1); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("listening err = %v", err)
	}
}

func TestListeningRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := mustChapter(t, s, "Bab 1")
	e, err := s.CreateListening(ctx, content.ListeningExercise{
		ChapterID:   c.ID,
		Title:       "Choukai 1",
		Description: "listen closely",
		ImageURL:    "/img/1.png",
		AudioURL1:   "/audio/1a.mp3",
		AudioURL2:   "/audio/1b.mp3",
		Script:      "script text",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetListening(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != e {
		t.Fatalf("GetListening = %+v, want %+v", got, e)
	}

	got.Script = "revised"
	updated, err := s.UpdateListening(ctx, e.ID, got)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Script != "revised" {
		t.Fatalf("Script = %q after update", updated.Script)
	}
}

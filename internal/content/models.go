package content

// Chapter (bab) is the root grouping for every exercise type. Deleting a
// chapter cascades to all owned rows via foreign keys.
type Chapter struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Vocabulary holds one free-form content blob (text or JSON) per entry;
// the admin panel decides the shape, the backend passes it through.
type Vocabulary struct {
	ID        int64  `json:"id"`
	ChapterID int64  `json:"chapter_id"`
	Content   string `json:"content"`
}

type GrammarPattern struct {
	ID          int64  `json:"id"`
	ChapterID   int64  `json:"chapter_id"`
	Pattern     string `json:"pattern"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// Quiz is one multiple-choice question. CorrectAnswer is a single option
// letter 'a'..'d'; the store does not enforce that, matching the admin
// tooling's lenient contract.
type Quiz struct {
	ID            int64  `json:"id"`
	ChapterID     int64  `json:"chapter_id"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

// PublicQuiz is the learner-facing projection: same row minus the answer
// key. Which projection a caller gets is decided by which store method is
// invoked, never by filtering a full record at the edge.
type PublicQuiz struct {
	ID        int64  `json:"id"`
	ChapterID int64  `json:"chapter_id"`
	Question  string `json:"question"`
	OptionA   string `json:"option_a"`
	OptionB   string `json:"option_b"`
	OptionC   string `json:"option_c"`
	OptionD   string `json:"option_d"`
}

type ReadingQuestion struct {
	ID            int64  `json:"id"`
	PassageID     int64  `json:"passage_id"`
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

type PublicReadingQuestion struct {
	ID           int64  `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
}

// ReadingPassage carries its questions in full (admin view). Questions is
// always non-nil so an empty set serializes as [].
type ReadingPassage struct {
	ID             int64             `json:"id"`
	ChapterID      int64             `json:"chapter_id"`
	PassageContent string            `json:"passage_content"`
	Questions      []ReadingQuestion `json:"questions"`
}

type PublicReadingPassage struct {
	ID             int64                   `json:"id"`
	ChapterID      int64                   `json:"chapter_id"`
	PassageContent string                  `json:"passage_content"`
	Questions      []PublicReadingQuestion `json:"questions"`
}

type ListeningExercise struct {
	ID          int64  `json:"id"`
	ChapterID   int64  `json:"chapter_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	AudioURL1   string `json:"audio_url_1"`
	AudioURL2   string `json:"audio_url_2"`
	Script      string `json:"script"`
}

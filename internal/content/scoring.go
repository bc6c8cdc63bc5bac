package content

// AnswerKey is one authoritative {question id, correct answer} pair for a
// chapter, fetched from quizzes or reading questions.
type AnswerKey struct {
	QuestionID    int64
	CorrectAnswer string
}

// SubmittedAnswer is one untrusted answer from a learner.
type SubmittedAnswer struct {
	QuestionID int64  `json:"questionId"`
	Answer     string `json:"answer"`
}

type AnswerResult struct {
	QuestionID    int64  `json:"questionId"`
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
}

type ScoreResult struct {
	Score   int            `json:"score"`
	Total   int            `json:"total"`
	Results []AnswerResult `json:"results"`
}

// Score grades a submission against the chapter's answer key.
//
// Total is always the size of the key, not of the submission, so a
// partial submission reports the full denominator. Submissions naming an
// unknown question id are dropped from the results without error, and a
// question id submitted twice is graded twice. Comparison is exact,
// case-sensitive string equality.
func Score(key []AnswerKey, submitted []SubmittedAnswer) ScoreResult {
	byID := make(map[int64]string, len(key))
	for _, k := range key {
		byID[k.QuestionID] = k.CorrectAnswer
	}

	res := ScoreResult{
		Total:   len(key),
		Results: []AnswerResult{},
	}
	for _, sub := range submitted {
		correct, ok := byID[sub.QuestionID]
		if !ok {
			continue
		}
		isCorrect := sub.Answer == correct
		if isCorrect {
			res.Score++
		}
		res.Results = append(res.Results, AnswerResult{
			QuestionID:    sub.QuestionID,
			IsCorrect:     isCorrect,
			CorrectAnswer: correct,
		})
	}
	return res
}

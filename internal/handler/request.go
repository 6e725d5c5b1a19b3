package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// looseString accepts a JSON string or number. The trivia frontend posts
// difficulty, category and search terms either way.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = looseString(n.String())
	return nil
}

// looseID accepts an integer ID as a JSON number or numeric string
type looseID int64

func (id *looseID) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = looseID(v)
	return nil
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   looseString `json:"question"`
	Answer     looseString `json:"answer"`
	Difficulty looseString `json:"difficulty"`
	Category   looseString `json:"category"`
}

// SearchRequest represents the request to search questions
type SearchRequest struct {
	SearchTerm looseString `json:"searchTerm"`
}

// QuizCategory identifies the category a quiz is played in; ID 0 means all
type QuizCategory struct {
	ID   *looseID `json:"id" validate:"required"`
	Type string   `json:"type"`
}

// PlayQuizRequest represents the request for the next quiz question
type PlayQuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions *[]looseID    `json:"previous_questions" validate:"required"`
}

func (r *PlayQuizRequest) previousIDs() []int64 {
	ids := make([]int64, 0, len(*r.PreviousQuestions))
	for _, id := range *r.PreviousQuestions {
		ids = append(ids, int64(id))
	}
	return ids
}

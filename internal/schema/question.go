// Package schema defines the closed set of question payload shapes and the
// rules for validating them at create and edit time. Every payload carries a
// "type" discriminant selecting one of five variants; the discriminant is
// fixed for the lifetime of a question.
package schema

import (
	"bytes"
	"encoding/json"

	"quizhub_backend/internal/util"
)

type QuestionType string

const (
	TypeMultiChoice QuestionType = "multiChoice"
	TypeOneChoice   QuestionType = "oneChoice"
	TypeTrueFalse   QuestionType = "trueFalse"
	TypeShortAnswer QuestionType = "shortAnswer"
	TypeLongAnswer  QuestionType = "longAnswer"
)

// MaxRubricLength bounds the free-text rubric of longAnswer questions.
const MaxRubricLength = 2000

// Variant is one concrete question payload shape.
type Variant interface {
	Validate() error
	questionType() QuestionType
}

// variants maps each discriminant to its payload constructor. Registering a
// new shape here is the only step needed to extend the codec.
var variants = map[QuestionType]func() Variant{
	TypeMultiChoice: func() Variant { return &MultiChoice{} },
	TypeOneChoice:   func() Variant { return &OneChoice{} },
	TypeTrueFalse:   func() Variant { return &TrueFalse{} },
	TypeShortAnswer: func() Variant { return &ShortAnswer{} },
	TypeLongAnswer:  func() Variant { return &LongAnswer{} },
}

type MultiChoiceAnswer struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// MultiChoice lets the taker select up to MaxSelected of the listed answers.
type MultiChoice struct {
	Type        QuestionType        `json:"type"`
	Answers     []MultiChoiceAnswer `json:"answers"`
	MaxSelected int                 `json:"maxSelected"`
}

func (q *MultiChoice) questionType() QuestionType { return TypeMultiChoice }

func (q *MultiChoice) Validate() error {
	if len(q.Answers) == 0 {
		return util.Invalid("answers", "at least one answer is required")
	}
	for i, a := range q.Answers {
		if a.Text == "" {
			return util.Invalid("answers", "answer %d must have text", i)
		}
	}
	if q.MaxSelected < 1 || q.MaxSelected > len(q.Answers) {
		return util.Invalid("maxSelected", "must be between 1 and %d", len(q.Answers))
	}
	return nil
}

// OneChoice is a single-select question; CorrectIndex points into Answers.
type OneChoice struct {
	Type         QuestionType `json:"type"`
	Answers      []string     `json:"answers"`
	CorrectIndex *int         `json:"correctIndex"`
}

func (q *OneChoice) questionType() QuestionType { return TypeOneChoice }

func (q *OneChoice) Validate() error {
	if len(q.Answers) < 2 {
		return util.Invalid("answers", "at least two answers are required")
	}
	if q.CorrectIndex == nil {
		return util.Invalid("correctIndex", "is required")
	}
	if *q.CorrectIndex < 0 || *q.CorrectIndex >= len(q.Answers) {
		return util.Invalid("correctIndex", "must be between 0 and %d", len(q.Answers)-1)
	}
	return nil
}

type TrueFalse struct {
	Type    QuestionType `json:"type"`
	Correct *bool        `json:"correct"`
}

func (q *TrueFalse) questionType() QuestionType { return TypeTrueFalse }

func (q *TrueFalse) Validate() error {
	if q.Correct == nil {
		return util.Invalid("correct", "is required")
	}
	return nil
}

// ShortAnswer accepts any of the listed strings as a correct response.
type ShortAnswer struct {
	Type            QuestionType `json:"type"`
	AcceptedAnswers []string     `json:"acceptedAnswers"`
}

func (q *ShortAnswer) questionType() QuestionType { return TypeShortAnswer }

func (q *ShortAnswer) Validate() error {
	if len(q.AcceptedAnswers) == 0 {
		return util.Invalid("acceptedAnswers", "at least one accepted answer is required")
	}
	for i, a := range q.AcceptedAnswers {
		if a == "" {
			return util.Invalid("acceptedAnswers", "accepted answer %d must not be empty", i)
		}
	}
	return nil
}

// LongAnswer is manually graded; the optional rubric guides the grader.
type LongAnswer struct {
	Type   QuestionType `json:"type"`
	Rubric *string      `json:"rubric,omitempty"`
}

func (q *LongAnswer) questionType() QuestionType { return TypeLongAnswer }

func (q *LongAnswer) Validate() error {
	if q.Rubric != nil && len(*q.Rubric) > MaxRubricLength {
		return util.Invalid("rubric", "must be at most %d characters", MaxRubricLength)
	}
	return nil
}

type typeHeader struct {
	Type QuestionType `json:"type"`
}

func peekType(raw json.RawMessage) (QuestionType, error) {
	var head typeHeader
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", util.Invalid("data", "must be a JSON object")
	}
	if head.Type == "" {
		return "", util.Invalid("type", "is required")
	}
	if _, ok := variants[head.Type]; !ok {
		return "", util.Invalid("type", "unknown question type %q", head.Type)
	}
	return head.Type, nil
}

func decodeStrict(raw json.RawMessage, v Variant) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return util.Invalid("data", "does not match the %q shape: %v", v.questionType(), err)
	}
	return nil
}

// ParseCreate validates a create-time payload against its declared type and
// returns the decoded variant plus its canonical JSON form.
func ParseCreate(raw json.RawMessage) (Variant, json.RawMessage, error) {
	qt, err := peekType(raw)
	if err != nil {
		return nil, nil, err
	}

	v := variants[qt]()
	if err := decodeStrict(raw, v); err != nil {
		return nil, nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, nil, err
	}

	canonical, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return v, canonical, nil
}

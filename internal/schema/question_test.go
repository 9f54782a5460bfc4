package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"quizhub_backend/internal/util"
)

func TestParseCreateMultiChoice(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "multiChoice",
		"answers": [
			{"text": "a", "isCorrect": true},
			{"text": "b", "isCorrect": false}
		],
		"maxSelected": 2
	}`)

	v, canonical, err := ParseCreate(raw)
	if err != nil {
		t.Fatalf("ParseCreate: %v", err)
	}
	mc, ok := v.(*MultiChoice)
	if !ok {
		t.Fatalf("expected *MultiChoice, got %T", v)
	}
	if mc.MaxSelected != 2 || len(mc.Answers) != 2 {
		t.Fatalf("unexpected decode: %+v", mc)
	}
	if !json.Valid(canonical) {
		t.Fatal("canonical form is not valid JSON")
	}
}

func TestParseCreateMultiChoiceMaxSelectedBound(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "multiChoice",
		"answers": [{"text": "a", "isCorrect": true}],
		"maxSelected": 3
	}`)

	_, _, err := ParseCreate(raw)
	if err == nil {
		t.Fatal("expected maxSelected > len(answers) to be rejected")
	}
	if !util.IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestParseCreateOneChoiceCorrectIndexRange(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid", `{"type":"oneChoice","answers":["x","y"],"correctIndex":0}`, false},
		{"last index", `{"type":"oneChoice","answers":["x","y"],"correctIndex":1}`, false},
		{"out of range", `{"type":"oneChoice","answers":["x","y"],"correctIndex":2}`, true},
		{"negative", `{"type":"oneChoice","answers":["x","y"],"correctIndex":-1}`, true},
		{"missing", `{"type":"oneChoice","answers":["x","y"]}`, true},
		{"too few answers", `{"type":"oneChoice","answers":["x"],"correctIndex":0}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseCreate(json.RawMessage(tc.payload))
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseCreateTrueFalseRequiresCorrect(t *testing.T) {
	if _, _, err := ParseCreate(json.RawMessage(`{"type":"trueFalse"}`)); err == nil {
		t.Fatal("expected missing correct to be rejected")
	}
	if _, _, err := ParseCreate(json.RawMessage(`{"type":"trueFalse","correct":false}`)); err != nil {
		t.Fatalf("explicit false must be accepted: %v", err)
	}
}

func TestParseCreateShortAnswer(t *testing.T) {
	if _, _, err := ParseCreate(json.RawMessage(`{"type":"shortAnswer","acceptedAnswers":[]}`)); err == nil {
		t.Fatal("expected empty acceptedAnswers to be rejected")
	}
	if _, _, err := ParseCreate(json.RawMessage(`{"type":"shortAnswer","acceptedAnswers":["42"]}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseCreateLongAnswerRubricLimit(t *testing.T) {
	long := strings.Repeat("x", MaxRubricLength+1)
	payload, _ := json.Marshal(map[string]interface{}{"type": "longAnswer", "rubric": long})
	if _, _, err := ParseCreate(payload); err == nil {
		t.Fatal("expected over-long rubric to be rejected")
	}

	if _, _, err := ParseCreate(json.RawMessage(`{"type":"longAnswer"}`)); err != nil {
		t.Fatalf("rubric must be optional: %v", err)
	}
}

func TestParseCreateRejectsUnknownType(t *testing.T) {
	_, _, err := ParseCreate(json.RawMessage(`{"type":"essay"}`))
	if err == nil {
		t.Fatal("expected unknown type to be rejected")
	}
}

func TestParseCreateRejectsMissingType(t *testing.T) {
	_, _, err := ParseCreate(json.RawMessage(`{"answers":["x","y"],"correctIndex":0}`))
	if err == nil {
		t.Fatal("expected missing type to be rejected")
	}
}

func TestParseCreateRejectsUnknownFields(t *testing.T) {
	_, _, err := ParseCreate(json.RawMessage(`{"type":"trueFalse","correct":true,"bonus":1}`))
	if err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestParseCreateRejectsMismatchedShape(t *testing.T) {
	// oneChoice fields under a multiChoice discriminant
	_, _, err := ParseCreate(json.RawMessage(`{"type":"multiChoice","answers":["x","y"],"correctIndex":0}`))
	if err == nil {
		t.Fatal("expected shape mismatch to be rejected")
	}
}

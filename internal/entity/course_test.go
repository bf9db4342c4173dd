package entity

import (
	"encoding/json"
	"testing"
)

func TestDateAcceptsBothBackendFormats(t *testing.T) {
	var short, full Date
	if err := json.Unmarshal([]byte(`"2024-09-25"`), &short); err != nil {
		t.Fatalf("short form: %v", err)
	}
	if err := json.Unmarshal([]byte(`"2024-09-25T00:00:00Z"`), &full); err != nil {
		t.Fatalf("RFC 3339 form: %v", err)
	}
	if !short.Equal(full.Time) {
		t.Fatalf("formats disagree: %v vs %v", short, full)
	}

	out, err := json.Marshal(short)
	if err != nil || string(out) != `"2024-09-25"` {
		t.Fatalf("marshal: %s %v", out, err)
	}

	var bad Date
	if err := json.Unmarshal([]byte(`"yesterday"`), &bad); err == nil {
		t.Fatal("nonsense date should not parse")
	}
}

func TestLearningMethodSetIsClosed(t *testing.T) {
	methods := LearningMethods()
	if len(methods) != 2 || methods[0] != InPerson || methods[1] != Zoom {
		t.Fatalf("unexpected method set %v", methods)
	}
	if LearningMethod("Hybrid").Valid() {
		t.Fatal("unknown method must not validate")
	}
	if InPerson.Icon() == "" || Zoom.Icon() == "" {
		t.Fatal("every method carries an icon label")
	}
}

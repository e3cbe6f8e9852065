// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package validation

import (
	"strings"
	"sync"
	"testing"
)

type testRequest struct {
	Moods     []string `json:"moods" validate:"max=2,dive,mood"`
	Session   string   `json:"sessionLength,omitempty" validate:"omitempty,session_length"`
	TimeOfDay string   `json:"timeOfDay,omitempty" validate:"omitempty,time_of_day"`
	Status    string   `json:"playStatus,omitempty" validate:"omitempty,play_status"`
	MatchMode string   `json:"matchMode,omitempty" validate:"omitempty,match_mode"`
	Limit     int      `json:"limit" validate:"gte=0,lte=50"`
	Title     string   `json:"title" validate:"required,max=10"`
}

func validRequest() testRequest {
	return testRequest{
		Moods:     []string{"chill", "Story-Driven"},
		Session:   "short",
		TimeOfDay: "late-night",
		Status:    "playing",
		MatchMode: "all",
		Limit:     10,
		Title:     "ok",
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*testRequest)
		wantField string
		wantTag   string
	}{
		{"valid", func(*testRequest) {}, "", ""},
		{"unknown mood", func(r *testRequest) { r.Moods = []string{"sleepy"} }, "moods[0]", "mood"},
		{"too many moods", func(r *testRequest) { r.Moods = []string{"chill", "cozy", "story"} }, "moods", "max"},
		{"bad session", func(r *testRequest) { r.Session = "epic" }, "sessionLength", "session_length"},
		{"bad time", func(r *testRequest) { r.TimeOfDay = "noon" }, "timeOfDay", "time_of_day"},
		{"bad status", func(r *testRequest) { r.Status = "wishlist" }, "playStatus", "play_status"},
		{"backlog status", func(r *testRequest) { r.Status = "backlog" }, "", ""},
		{"bad match mode", func(r *testRequest) { r.MatchMode = "most" }, "matchMode", "match_mode"},
		{"limit too high", func(r *testRequest) { r.Limit = 51 }, "limit", "lte"},
		{"missing title", func(r *testRequest) { r.Title = "" }, "title", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validRequest()
			tt.mutate(&req)

			verr := ValidateStruct(&req)
			if tt.wantTag == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil || len(verr.Fields) != 1 {
				t.Fatalf("ValidateStruct() = %v, want one field error", verr)
			}
			f := verr.Fields[0]
			if f.Field != tt.wantField || f.Tag != tt.wantTag {
				t.Errorf("field error = %+v, want %s/%s", f, tt.wantField, tt.wantTag)
			}
			if !strings.Contains(f.Message, tt.wantField) {
				t.Errorf("message %q does not name the field", f.Message)
			}
			if d := verr.Details(); d["field"] != tt.wantField {
				t.Errorf("Details() = %v", d)
			}
		})
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Title = ""
	req.Limit = -1

	verr := ValidateStruct(&req)
	if verr == nil || len(verr.Fields) != 2 {
		t.Fatalf("ValidateStruct() = %v, want two errors", verr)
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("Error() = %q, want joined messages", verr.Error())
	}
	if _, ok := verr.Details()["fields"]; !ok {
		t.Errorf("Details() = %v, want fields list", verr.Details())
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	results := make([]interface{}, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = GetValidator()
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("GetValidator returned different instances")
		}
	}
}

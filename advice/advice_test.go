package advice

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"lg/fitcalc-go-api/calculator"
)

// setupMockOpenAI starts a fake chat completions server. The returned
// setter controls the next status and reply content; lastPrompt exposes
// the most recent user message the server received.
func setupMockOpenAI(t *testing.T) (*httptest.Server, func(int, string), func() string) {
	t.Helper()
	var mu sync.Mutex
	mockStatus := http.StatusOK
	var mockContent, lastPrompt string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Messages []struct {
				Content any `json:"content"`
			} `json:"messages"`
		}
		if err := json.Unmarshal(body, &req); err == nil && len(req.Messages) > 0 {
			b, _ := json.Marshal(req.Messages[len(req.Messages)-1].Content)
			mu.Lock()
			lastPrompt = string(b)
			mu.Unlock()
		}

		mu.Lock()
		status, content := mockStatus, mockContent
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": "server error"}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		})
	}))
	t.Cleanup(srv.Close)

	setMock := func(status int, content string) {
		mu.Lock()
		defer mu.Unlock()
		mockStatus = status
		mockContent = content
	}
	getPrompt := func() string {
		mu.Lock()
		defer mu.Unlock()
		return lastPrompt
	}
	return srv, setMock, getPrompt
}

func testPlan(t *testing.T, target float64, rate float64) (calculator.UserProfile, calculator.Result) {
	t.Helper()
	p := calculator.UserProfile{
		Gender:          calculator.Male,
		Age:             30,
		HeightCm:        175,
		CurrentWeightKg: 80,
		TargetWeightKg:  target,
		ActivityLevel:   calculator.ModeratelyActive,
		GoalType:        calculator.GoalWeeklyRate,
		WeeklyRateKg:    &rate,
	}
	r, err := calculator.Calculate(p, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	return p, r
}

func newTestAdvisor(t *testing.T, baseURL string) *Advisor {
	t.Helper()
	a, err := NewOpenAI(Config{APIKey: "test-key", BaseURL: baseURL, Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("NewOpenAI: %v", err)
	}
	return a
}

/* ─── Advise ─────────────────────────────────────────────────────────── */

func TestAdvise_Success(t *testing.T) {
	srv, setMock, lastPrompt := setupMockOpenAI(t)
	setMock(http.StatusOK, `{"tip":"Stay consistent.","mealPlan":"Oats, then chicken and rice.","macros":"30/40/30"}`)

	p, r := testPlan(t, 70, 0.5)
	adv, err := newTestAdvisor(t, srv.URL).Advise(context.Background(), p, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adv.Tip != "Stay consistent." || adv.Macros != "30/40/30" {
		t.Errorf("unexpected advice: %+v", adv)
	}
	if !strings.Contains(lastPrompt(), "Days to reach the goal: 140") {
		t.Errorf("prompt sent to the model is missing days to goal: %s", lastPrompt())
	}
}

func TestAdvise_ServerError(t *testing.T) {
	srv, setMock, _ := setupMockOpenAI(t)
	setMock(http.StatusInternalServerError, "")

	p, r := testPlan(t, 70, 0.5)
	_, err := newTestAdvisor(t, srv.URL).Advise(context.Background(), p, r)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestAdvise_MalformedReply(t *testing.T) {
	srv, setMock, _ := setupMockOpenAI(t)
	setMock(http.StatusOK, "not valid json at all")

	p, r := testPlan(t, 70, 0.5)
	_, err := newTestAdvisor(t, srv.URL).Advise(context.Background(), p, r)
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, ErrMalformedReply) {
		t.Errorf("expected ErrUnavailable wrapping ErrMalformedReply, got %v", err)
	}
}

func TestNewOpenAI_MissingKey(t *testing.T) {
	if _, err := NewOpenAI(Config{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

/* ─── Prompt ─────────────────────────────────────────────────────────── */

func TestBuildPrompt_Fields(t *testing.T) {
	p, r := testPlan(t, 70, 0.5)
	prompt, err := New(nil).BuildPrompt(p, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"Gender: Male",
		"Age: 30 years",
		"Current weight: 80.0 kg",
		"Target weight: 70.0 kg",
		"Activity level: moderately_active",
		"BMR: 1749 kcal",
		"(TDEE): 2711 kcal",
		"Recommended daily calories: 2161 kcal",
		"Days to reach the goal: 140",
		`"mealPlan"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "IMPORTANT") {
		t.Errorf("prompt should not carry the safety clause without a warning")
	}
}

func TestBuildPrompt_WarningClause(t *testing.T) {
	p, r := testPlan(t, 40, 2)
	if r.Warning == "" {
		t.Fatal("expected the safety floor to trigger")
	}
	prompt, err := New(nil).BuildPrompt(p, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "not starving") {
		t.Errorf("prompt missing safety clause:\n%s", prompt)
	}
}

/* ─── ParseReply ─────────────────────────────────────────────────────── */

func TestParseReply(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"plain json", `{"tip":"a","mealPlan":"b","macros":"c"}`, false},
		{"fenced json", "```json\n{\"tip\":\"a\",\"mealPlan\":\"b\",\"macros\":\"c\"}\n```", false},
		{"bare fence", "```\n{\"tip\":\"a\"}\n```", false},
		{"empty object", `{}`, true},
		{"not json", `hello`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			adv, err := ParseReply(tc.content)
			if tc.wantErr {
				if !errors.Is(err, ErrMalformedReply) {
					t.Errorf("expected ErrMalformedReply, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if adv.Tip != "a" {
				t.Errorf("Tip = %q, want a", adv.Tip)
			}
		})
	}
}

// Package advice asks a chat-completion model for dietary advice that fits
// a calculated calorie plan.
package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/prompts"

	"lg/fitcalc-go-api/calculator"
)

var (
	// ErrNotConfigured is returned by NewOpenAI when no API key is set.
	ErrNotConfigured = errors.New("advice service not configured")
	// ErrUnavailable wraps every failure to obtain advice from the model.
	ErrUnavailable = errors.New("advice unavailable")
	// ErrMalformedReply marks a model reply that is not the expected JSON.
	ErrMalformedReply = errors.New("malformed advice reply")
)

// Advice is the structured reply requested from the model.
type Advice struct {
	Tip      string `json:"tip"`
	MealPlan string `json:"mealPlan"`
	Macros   string `json:"macros"`
}

// Config selects the OpenAI-compatible endpoint used for advice.
type Config struct {
	APIKey  string
	BaseURL string // e.g. https://api.openai.com/v1; overridable for tests
	Model   string
	Timeout time.Duration
}

// Advisor formats prompts and calls the model. Safe for concurrent use.
type Advisor struct {
	llm    llms.Model
	prompt prompts.PromptTemplate
}

// New returns an Advisor backed by any langchaingo model.
func New(llm llms.Model) *Advisor {
	return &Advisor{
		llm:    llm,
		prompt: prompts.NewPromptTemplate(promptTemplate, promptInputs),
	}
}

// NewOpenAI builds an Advisor on the OpenAI chat completions API.
func NewOpenAI(cfg Config) (*Advisor, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return New(llm), nil
}

// Advise sends one prompt describing p and r and parses the reply. There is
// no retry; any failure is returned wrapped in ErrUnavailable and never
// touches r.
func (a *Advisor) Advise(ctx context.Context, p calculator.UserProfile, r calculator.Result) (Advice, error) {
	prompt, err := a.BuildPrompt(p, r)
	if err != nil {
		return Advice{}, fmt.Errorf("%w: build prompt: %w", ErrUnavailable, err)
	}

	content, err := llms.GenerateFromSinglePrompt(ctx, a.llm, prompt,
		llms.WithJSONMode(),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		log.Printf("[advice] model error: %v", err)
		return Advice{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	adv, err := ParseReply(content)
	if err != nil {
		log.Printf("[advice] failed to parse reply: %v", err)
		return Advice{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return adv, nil
}

// BuildPrompt renders the advice prompt for p and r.
func (a *Advisor) BuildPrompt(p calculator.UserProfile, r calculator.Result) (string, error) {
	gender := "Female"
	if p.Gender == calculator.Male {
		gender = "Male"
	}
	return a.prompt.Format(map[string]any{
		"gender":         gender,
		"age":            p.Age,
		"current_weight": fmt.Sprintf("%.1f", p.CurrentWeightKg),
		"target_weight":  fmt.Sprintf("%.1f", p.TargetWeightKg),
		"activity_level": string(p.ActivityLevel),
		"bmr":            int(math.Round(r.BMR)),
		"tdee":           int(math.Round(r.TDEE)),
		"daily_calories": int(math.Round(r.DailyCalories)),
		"days_to_goal":   r.DaysToGoal,
		"warning":        r.Warning != "",
	})
}

// ParseReply decodes a model reply into Advice. Markdown code fences around
// the JSON are tolerated. A reply with none of the three fields is rejected.
func ParseReply(content string) (Advice, error) {
	content = stripCodeFence(content)

	var adv Advice
	if err := json.Unmarshal([]byte(content), &adv); err != nil {
		return Advice{}, fmt.Errorf("%w: %w", ErrMalformedReply, err)
	}
	if adv.Tip == "" && adv.MealPlan == "" && adv.Macros == "" {
		return Advice{}, fmt.Errorf("%w: no tip, mealPlan or macros", ErrMalformedReply)
	}
	return adv, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

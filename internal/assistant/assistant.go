package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/model"
)

// Provider-bound requests are routed through this fixed proxy host instead
// of the generative-AI provider's own domain.
const defaultBaseURL = "https://api-proxy.me/gemini"

const defaultTimeout = 60 * time.Second

var (
	// ErrMissingAPIKey short-circuits before any network call.
	ErrMissingAPIKey = errors.New("missing gemini api key")
	// ErrBadResponse marks a model reply that violated the JSON contract.
	ErrBadResponse = errors.New("unparseable model response")
)

type Config struct {
	APIKey   string
	Model    string
	BaseURL  string // empty selects the fixed proxy host
	Language string // "en" or "zh-TW"; steers reply language
	// DayContext is a short plain-text summary of today's intake and goals,
	// folded into the chat system prompt so advice reflects the user's day.
	DayContext string
	Timeout    time.Duration
}

// Client is the AI collaborator: conversational advice, food photo
// analysis, and calorie estimation. The transport (base URL, timeout) is
// injected at construction and scoped to this value; no global HTTP state
// is touched.
type Client struct {
	client     *genai.Client
	model      string
	lang       string
	dayContext string
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	lang := cfg.Language
	if lang == "" {
		lang = i18n.LangEN
	}
	return &Client{client: client, model: cfg.Model, lang: lang, dayContext: strings.TrimSpace(cfg.DayContext)}, nil
}

// Chat sends the conversation history plus a new user message and returns
// the model's reply text.
func (c *Client) Chat(ctx context.Context, history []model.ChatMessage, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == model.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(c.chatSystemPrompt(), genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("generate chat reply: %w", err)
	}
	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", fmt.Errorf("%w: empty reply", ErrBadResponse)
	}
	return reply, nil
}

// EstimateCalories estimates a single food entry from a free-text
// description.
func (c *Client) EstimateCalories(ctx context.Context, description string) (FoodEstimate, error) {
	prompt := fmt.Sprintf(`Estimate the nutrition of the following food portion: %q.
Respond with a single JSON object and nothing else:
{"name": string, "calories": integer, "protein": integer grams, "carbs": integer grams, "fat": integer grams}
Use the food's common name for "name". All numbers must be non-negative integers for the described portion.`, description)

	raw, err := c.generateJSON(ctx, prompt, nil, "")
	if err != nil {
		return FoodEstimate{}, err
	}
	return decodeEstimate(raw)
}

// AnalyzeFoodImage identifies the food items in a photo and estimates
// their nutrition.
func (c *Client) AnalyzeFoodImage(ctx context.Context, imageData []byte, mimeType string) ([]FoodEstimate, error) {
	prompt := `Identify every distinct food item in this photo and estimate its nutrition.
Respond with a JSON array and nothing else; one object per item:
[{"name": string, "calories": integer, "protein": integer grams, "carbs": integer grams, "fat": integer grams}]
All numbers must be non-negative integers for the visible portion. Use an empty array if no food is visible.`

	raw, err := c.generateJSON(ctx, prompt, imageData, mimeType)
	if err != nil {
		return nil, err
	}
	return decodeEstimates(raw)
}

func (c *Client) generateJSON(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if len(imageData) > 0 {
		parts = append(parts, genai.NewPartFromBytes(imageData, mimeType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("generate estimate: %w", err)
	}
	return resp.Text(), nil
}

func (c *Client) chatSystemPrompt() string {
	lang := "English"
	if c.lang == i18n.LangZhTW {
		lang = "Traditional Chinese"
	}
	prompt := "You are a friendly nutrition and fitness assistant inside a calorie tracking app. " +
		"Give practical, concise advice about food, calories, and exercise. Reply in " + lang + "."
	if c.dayContext != "" {
		prompt += " The user's day so far: " + c.dayContext
	}
	return prompt
}

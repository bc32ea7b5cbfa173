// Package llm wraps the external generative-AI service behind thin
// request/response helpers. Every call is a plain round-trip against an
// OpenAI-compatible chat-completions endpoint; failures return an error
// before any caller-side state changes.
package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arsh077/Khurak-new-application/config"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

// Vision requests carry structured content parts instead of a string.
type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type visionMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type visionRequest struct {
	Model     string          `json:"model"`
	Messages  []visionMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type choice struct {
	Index   int     `json:"index"`
	Message Message `json:"message"`
}

type chatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Choices []choice `json:"choices"`
}

// Food is the parsed shape of one recognised food item.
type Food struct {
	Name           string   `json:"name"`
	Calories       float64  `json:"calories"`
	Protein        float64  `json:"protein"`
	Carbs          float64  `json:"carbs"`
	Fats           float64  `json:"fats"`
	Fiber          *float64 `json:"fiber,omitempty"`
	Micronutrients string   `json:"micronutrients,omitempty"`
	Quantity       string   `json:"quantity"`
	Grams          *float64 `json:"grams,omitempty"`
}

// Recipe is the parsed recipe-generation result.
type Recipe struct {
	Title  string   `json:"title"`
	Steps  []string `json:"steps"`
	Macros struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
	} `json:"macros"`
	HealthScore int    `json:"healthScore"`
	Monologue   string `json:"monologue"`
}

type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewClient() *Client {
	return &Client{
		apiKey:  config.GetEnv("LLM_API_KEY", ""),
		baseURL: config.GetEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		model:   config.GetEnv("LLM_MODEL", "gpt-4o-mini"),
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) post(body any) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("LLM_API_KEY not configured")
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	return chatResp.Choices[0].Message.Content, nil
}

// Chat sends a plain conversation and returns the model's reply.
func (c *Client) Chat(messages []Message) (string, error) {
	return c.post(chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   1000,
		Temperature: 0.7,
	})
}

// stripFences removes a markdown code fence the model may wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func (c *Client) chatJSON(system, user string, out any) error {
	text, err := c.Chat([]Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(stripFences(text)), out); err != nil {
		return fmt.Errorf("failed to parse model JSON: %w", err)
	}
	return nil
}

const foodSchemaHint = `Respond with ONLY a JSON array of objects, each with keys:
name (string), calories (number), protein (number, grams), carbs (number, grams),
fats (number, grams), fiber (number, grams, optional), micronutrients (string, optional),
quantity (display string like "1 bowl"), grams (number, optional).`

// AnalyzeFoodText estimates the items and macros in a free-text meal
// description.
func (c *Client) AnalyzeFoodText(query string) ([]Food, error) {
	var foods []Food
	err := c.chatJSON(
		"You are a nutrition analysis engine. "+foodSchemaHint,
		fmt.Sprintf("Identify every food item in this description and estimate its macros: %q", query),
		&foods,
	)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("no food items recognised")
	}
	return foods, nil
}

// AnalyzeFoodImage recognises the foods on a photographed plate. The
// image travels as a base64 data URL content part.
func (c *Client) AnalyzeFoodImage(base64Image string) ([]Food, error) {
	text, err := c.post(visionRequest{
		Model: c.model,
		Messages: []visionMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: "Identify every food item on this plate and estimate its macros. " + foodSchemaHint},
				{Type: "image_url", ImageURL: &imageURL{URL: "data:image/jpeg;base64," + base64Image}},
			},
		}},
		MaxTokens: 1000,
	})
	if err != nil {
		return nil, err
	}
	var foods []Food
	if err := json.Unmarshal([]byte(stripFences(text)), &foods); err != nil {
		return nil, fmt.Errorf("failed to parse model JSON: %w", err)
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("no food items recognised")
	}
	return foods, nil
}

// MacrosFromGrams estimates macros for a named food at an exact weight.
func (c *Client) MacrosFromGrams(name string, grams float64) (Food, error) {
	var food Food
	err := c.chatJSON(
		"You are a nutrition analysis engine. Respond with ONLY a single JSON object with keys: "+
			"name, calories, protein, carbs, fats, fiber (optional), micronutrients (optional), quantity, grams.",
		fmt.Sprintf("Estimate the macros for exactly %.0f grams of %q.", grams, name),
		&food,
	)
	if err != nil {
		return Food{}, err
	}
	if food.Grams == nil {
		food.Grams = &grams
	}
	return food, nil
}

// GenerateRecipe builds a recipe from available ingredients, respecting
// the user's hormonal context.
func (c *Client) GenerateRecipe(ingredients, hormonalContext string) (Recipe, error) {
	var recipe Recipe
	err := c.chatJSON(
		"You are a pragmatic nutritionist-chef. Respond with ONLY a JSON object with keys: "+
			"title (string), steps (array of strings), macros (object with calories, protein, carbs, fats), "+
			"healthScore (integer 1-10), monologue (string: how to fit this into the diet).",
		fmt.Sprintf("Ingredients on hand: %s. Health context: %s. Create one healthy recipe.",
			ingredients, hormonalContext),
		&recipe,
	)
	if err != nil {
		return Recipe{}, err
	}
	if recipe.Title == "" {
		return Recipe{}, fmt.Errorf("model returned an empty recipe")
	}
	return recipe, nil
}

// NutritionistReply continues the coaching conversation. userContext
// carries the profile summary (targets, goal, restrictions).
func (c *Client) NutritionistReply(history []Message, userContext string) (string, error) {
	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, Message{
		Role: "system",
		Content: "You are a blunt but supportive nutritionist in a gamified fitness system. " +
			"Keep answers short and practical. User context: " + userContext,
	})
	messages = append(messages, history...)
	return c.Chat(messages)
}

// SuggestNextMeal proposes what to eat next given the remaining budget.
func (c *Client) SuggestNextMeal(remainingCalories int, mealType, userContext string) (string, error) {
	return c.Chat([]Message{
		{Role: "system", Content: "You are a practical meal-planning assistant. " + userContext},
		{Role: "user", Content: fmt.Sprintf(
			"I have %d kcal left today and I'm planning %s. Suggest one specific meal with rough macros.",
			remainingCalories, mealType)},
	})
}

// FindHealthyPlaces lists healthy food options near the coordinates. The
// reply is free text for direct display.
func (c *Client) FindHealthyPlaces(lat, lng float64) (string, error) {
	return c.Chat([]Message{
		{Role: "system", Content: "You suggest healthy restaurants and grocery options near a location."},
		{Role: "user", Content: fmt.Sprintf(
			"List a few healthy food places near latitude %.5f, longitude %.5f with one-line reasons.", lat, lng)},
	})
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"finbuddy-go-be/ai"
	"finbuddy-go-be/lessons"
)

// aiTimeout bounds every upstream generation call.
const aiTimeout = 60 * time.Second

// AIHandler serves the generated-content endpoints. The generator is
// injected so tests can fake the model.
type AIHandler struct {
	Generator ai.Generator
}

// NewAIHandler wires the content endpoints to a generator. A nil
// generator (missing API key) keeps the routes up but failing cleanly.
func NewAIHandler(g ai.Generator) *AIHandler {
	return &AIHandler{Generator: g}
}

// InsightsRequest optionally personalizes the generated insights.
type InsightsRequest struct {
	UserContext string `json:"userContext"`
}

// rawInsight is what the model returns; keywords are input to the
// matcher only and never leave the server.
type rawInsight struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Category string   `json:"category"`
	Impact   string   `json:"impact"`
	Keywords []string `json:"keywords"`
}

// FinancialInsight is one enriched insight as served to clients.
type FinancialInsight struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Summary            string  `json:"summary"`
	Category           string  `json:"category"`
	Impact             string  `json:"impact"`
	RelatedLessonID    *int    `json:"relatedLessonId"`
	RelatedLessonTitle *string `json:"relatedLessonTitle"`
}

const insightsSystemPrompt = `You are a financial education assistant for young people learning about money management. Generate 3 current, relevant financial insights or tips that would interest someone learning about personal finance.

Each insight should be educational, actionable, and relate to one of these topics:
- Basic money concepts
- Income and expenses
- Saving strategies
- Financial goal setting
- Budgeting
- Understanding credit
- Introduction to investing

Respond with a JSON array of exactly 3 insights. Each insight should have:
- id: a unique string
- title: a catchy headline (max 60 chars)
- summary: a brief explanation (max 120 chars)
- category: one of "saving", "spending", "investing", "budgeting", "credit", "general"
- impact: "positive", "negative", or "neutral" indicating the tone
- keywords: array of 2-3 keywords for matching to lessons

IMPORTANT: Respond ONLY with the JSON array, no other text.`

// generationError maps the ai error taxonomy onto the response contract.
func generationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ai.ErrRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Rate limit exceeded. Please try again later."})
	case errors.Is(err, ai.ErrQuotaExceeded):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "Service temporarily unavailable."})
	default:
		log.Printf("AI generation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI generation failed"})
	}
}

// GenerateInsights produces 3 enriched financial insights.
func (h *AIHandler) GenerateInsights(c *fiber.Ctx) error {
	if h.Generator == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "GEMINI_API_KEY not set"})
	}

	var req InsightsRequest
	// Body is optional; ignore parse errors for an empty payload.
	_ = c.BodyParser(&req)

	userPrompt := "Generate 3 general financial insights for a young person learning about money."
	if req.UserContext != "" {
		userPrompt = "Generate financial insights for someone with: " + req.UserContext
	}

	ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
	defer cancel()

	rawText, err := h.Generator.Generate(ctx, insightsSystemPrompt, userPrompt)
	if err != nil {
		return generationError(c, err)
	}

	var raw []rawInsight
	if err := json.Unmarshal([]byte(ai.StripFences(rawText)), &raw); err != nil {
		log.Printf("Failed to parse AI response: %v. Raw text: %s", err, rawText)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Invalid response format from AI"})
	}

	insights := make([]FinancialInsight, 0, len(raw))
	for _, item := range raw {
		out := FinancialInsight{
			ID:       item.ID,
			Title:    item.Title,
			Summary:  item.Summary,
			Category: item.Category,
			Impact:   item.Impact,
		}
		if lesson, ok := lessons.Match(lessons.Document{
			Title:    item.Title,
			Summary:  item.Summary,
			Keywords: item.Keywords,
		}); ok {
			id, title := lesson.ID, lesson.Title
			out.RelatedLessonID = &id
			out.RelatedLessonTitle = &title
		}
		insights = append(insights, out)
	}

	return c.JSON(fiber.Map{"insights": insights})
}

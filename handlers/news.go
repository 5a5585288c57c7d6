package handlers

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"finbuddy-go-be/ai"
	"finbuddy-go-be/lessons"
)

// rawNewsItem is the model's shape for one news item; keywords feed the
// matcher and are stripped from the response.
type rawNewsItem struct {
	ID           string   `json:"id"`
	Headline     string   `json:"headline"`
	Summary      string   `json:"summary"`
	Category     string   `json:"category"`
	Sentiment    string   `json:"sentiment"`
	RelatedTopic string   `json:"relatedTopic"`
	Keywords     []string `json:"keywords"`
}

// NewsItem is one enriched news item as served to clients.
type NewsItem struct {
	ID                 string  `json:"id"`
	Headline           string  `json:"headline"`
	Summary            string  `json:"summary"`
	Category           string  `json:"category"`
	Sentiment          string  `json:"sentiment"`
	RelatedTopic       string  `json:"relatedTopic"`
	RelatedLessonID    *int    `json:"relatedLessonId"`
	RelatedLessonTitle *string `json:"relatedLessonTitle"`
}

const newsSystemPrompt = `You are a financial news curator for young people learning about money. Generate 4 current, educational financial news items that are relevant and easy to understand.

Focus on news that teaches financial concepts like:
- Stock market trends and what they mean
- Interest rates and their impact on savings
- Inflation and purchasing power
- Cryptocurrency developments
- Economic indicators
- Personal finance tips from current events

Each news item should be:
- Educational and explain WHY it matters
- Written for beginners (no jargon without explanation)
- Current and relevant (use today's date context)
- Connected to practical money lessons

Respond with a JSON array of exactly 4 news items. Each item should have:
- id: unique string
- headline: catchy title (max 70 chars)
- summary: brief explanation of news and why it matters (max 150 chars)
- category: one of "markets", "economy", "crypto", "banking", "investing", "personal-finance"
- sentiment: "bullish" (positive/growing), "bearish" (negative/declining), or "neutral"
- relatedTopic: the financial concept this teaches (e.g., "compound interest", "diversification", "inflation")
- keywords: array of 2-3 keywords for matching to lessons

IMPORTANT: Respond ONLY with the JSON array, no other text. Make the news feel current and relevant.`

const newsUserPrompt = "Generate 4 current financial news items for today that would help a young person learn about money and markets."

// GenerateNews produces 4 enriched financial news items.
func (h *AIHandler) GenerateNews(c *fiber.Ctx) error {
	if h.Generator == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "GEMINI_API_KEY not set"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
	defer cancel()

	rawText, err := h.Generator.Generate(ctx, newsSystemPrompt, newsUserPrompt)
	if err != nil {
		return generationError(c, err)
	}

	var raw []rawNewsItem
	if err := json.Unmarshal([]byte(ai.StripFences(rawText)), &raw); err != nil {
		log.Printf("Failed to parse AI response: %v. Raw text: %s", err, rawText)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Invalid response format from AI"})
	}

	news := make([]NewsItem, 0, len(raw))
	for _, item := range raw {
		out := NewsItem{
			ID:           item.ID,
			Headline:     item.Headline,
			Summary:      item.Summary,
			Category:     item.Category,
			Sentiment:    item.Sentiment,
			RelatedTopic: item.RelatedTopic,
		}
		if lesson, ok := lessons.Match(lessons.Document{
			Title:        item.Headline,
			Summary:      item.Summary,
			RelatedTopic: item.RelatedTopic,
			Keywords:     item.Keywords,
		}); ok {
			id, title := lesson.ID, lesson.Title
			out.RelatedLessonID = &id
			out.RelatedLessonTitle = &title
		}
		news = append(news, out)
	}

	return c.JSON(fiber.Map{"news": news})
}

package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/example/morascent/internal/models"
)

// AssistantService forwards the storefront chat to the Gemini text-generation
// API. It assembles a system instruction from the store settings and the full
// bilingual product list, sends the running transcript, and returns the reply
// verbatim. Every failure is swallowed into a canned bilingual apology so the
// widget stays usable for the next message.
type AssistantService struct {
	apiKey string
	model  string
	client *http.Client
}

// NewAssistantService creates a new AssistantService.
func NewAssistantService(apiKey, model string) *AssistantService {
	return &AssistantService{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether the service is configured to make calls.
func (s *AssistantService) Enabled() bool {
	return s.apiKey != ""
}

// ChatMessage is one turn of the conversation. Role is "user" or "model".
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Apology returns the canned bilingual failure message.
func Apology(lang string) string {
	if lang == "ar" {
		return "عذراً، أواجه صعوبة في الاتصال حالياً. يرجى المحاولة مرة أخرى."
	}
	return "Sorry, I am having trouble connecting right now. Please try again."
}

// Reply sends the transcript plus the latest user message and returns the
// model's answer, or the bilingual apology when anything goes wrong.
func (s *AssistantService) Reply(lang string, history []ChatMessage, userMsg string, settings models.StoreSettings, products []models.Product) string {
	if !s.Enabled() {
		log.Println("[Assistant] API key not configured")
		return Apology(lang)
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, m := range history {
		role := "user"
		if m.Role == "model" {
			role = "model"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: m.Text}}})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: userMsg}}})

	payload := geminiRequest{
		Contents:          contents,
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemInstruction(lang, settings, products)}}},
		GenerationConfig:  &generationConfig{Temperature: 0.7},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Assistant] Failed to marshal request: %v", err)
		return Apology(lang)
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		s.model, s.apiKey,
	)

	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Assistant] Request failed: %v", err)
		return Apology(lang)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Assistant] Unexpected status: %d", resp.StatusCode)
		return Apology(lang)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("[Assistant] Failed to decode response: %v", err)
		return Apology(lang)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		log.Println("[Assistant] Empty response")
		return Apology(lang)
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return Apology(lang)
	}
	return text
}

func systemInstruction(lang string, settings models.StoreSettings, products []models.Product) string {
	var catalog strings.Builder
	for _, p := range products {
		catalog.WriteString(fmt.Sprintf("- %s / %s (%s): %g %s. Description: %s\n",
			p.Name, p.NameEn, p.Category, p.Price, settings.Currency, p.DescriptionEn))
	}

	if lang == "ar" {
		return fmt.Sprintf(`أنت مساعد ذكي لمتجر "%s" الفاخر للعطور.
أسلوبك: راقٍ، مؤدب، خبير في العطور، ومساعد جداً.
استخدم اللغة العربية الفصحى البسيطة المناسبة لمصر.
لديك قائمة المنتجات التالية المتوفرة في المتجر:
%s
مهامك:
1. الإجابة على استفسارات العملاء حول العطور.
2. ترشيح عطور بناءً على ذوق العميل.
3. تشجيع العميل على إتمام الشراء بلطف وفخامة.`, settings.Name, catalog.String())
	}

	return fmt.Sprintf(`You are a smart assistant for the luxury "%s" perfume store.
Your style: sophisticated, polite, perfume expert, and very helpful.
Available products:
%s
Tasks:
1. Answer customer inquiries about perfumes.
2. Recommend perfumes based on customer taste.
3. Gently encourage the customer to complete the purchase.`, settings.Name, catalog.String())
}

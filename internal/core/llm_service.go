package core

import (
	"context"
	"fmt"
	"log"
	"strings"

	"almuhtawa.com/script-studio/internal/config"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultScriptModelName   = "gemini-3-pro-preview"
	defaultAnalysisModelName = "gemini-3-pro-preview"

	generationTemperature = 0.7
)

type LLMService struct {
	client *genai.Client
}

func NewLLMService() *LLMService {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Fatalf("Failed to create GenAI client: %v", err)
	}

	return &LLMService{
		client: client,
	}
}

func (s *LLMService) Close() {
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			log.Printf("Error closing GenAI client: %v", err)
		} else {
			log.Println("GenAI client closed.")
		}
	}
}

// GenerateScript sends the assembled prompt plus each attachment as its own
// binary part and returns the model's raw text. One blocking call, no retry.
func (s *LLMService) GenerateScript(prompt string, attachments []Attachment) (string, error) {
	ctx := context.Background()
	model := s.client.GenerativeModel(defaultScriptModelName)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	temp := float32(generationTemperature)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature: &temp,
	}

	parts := []genai.Part{genai.Text(prompt)}
	for _, att := range attachments {
		parts = append(parts, genai.Blob{MIMEType: att.MIMEType, Data: att.Data})
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini script generation failed: %w", err)
	}

	text := flattenResponse(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty generation response")
	}
	return text, nil
}

// AnalyzeRetention sends a retention-graph screenshot and the video link and
// returns the model's free-text critique.
func (s *LLMService) AnalyzeRetention(image Attachment, link string) (string, error) {
	ctx := context.Background()
	model := s.client.GenerativeModel(defaultAnalysisModelName)

	parts := []genai.Part{
		genai.Blob{MIMEType: image.MIMEType, Data: image.Data},
		genai.Text(fmt.Sprintf(retentionPromptTemplate, link)),
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini retention analysis failed: %w", err)
	}
	return flattenResponse(resp), nil
}

// VerifyScript asks the model, with search grounding enabled, to check how
// the linked video performed and to extract its stylistic pattern. The
// response is raw text; the verification JSON is dug out by the caller.
func (s *LLMService) VerifyScript(link, scriptText string) (string, error) {
	ctx := context.Background()
	model := s.client.GenerativeModel(defaultAnalysisModelName)
	model.Tools = []*genai.Tool{
		{GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{}},
	}

	prompt := fmt.Sprintf(verificationPromptTemplate, link)
	if scriptText != "" {
		prompt += "\nنص السكربت:\n" + scriptText
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini verification request failed: %w", err)
	}
	return flattenResponse(resp), nil
}

func flattenResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		} else {
			log.Printf("Gemini response part was not text: %T", part)
		}
	}
	return text.String()
}

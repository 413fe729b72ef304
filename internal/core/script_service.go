package core

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"almuhtawa.com/script-studio/internal/store"
)

// Validation failures rejected locally, before any remote call.
var (
	ErrScriptNotFound        = errors.New("script not found")
	ErrLinkRequired          = errors.New("a video link is required to verify a successful script")
	ErrLearnInputRequired    = errors.New("a link or a script text is required to learn from")
	ErrInvalidStatus         = errors.New("status must be 'success' or 'weak'")
	ErrAnalysisInputRequired = errors.New("a video link and a retention image are required")
)

type ScriptService struct {
	dbStore    *store.SQLiteStore
	llmService *LLMService
}

func NewScriptService(db *store.SQLiteStore, llm *LLMService) *ScriptService {
	return &ScriptService{
		dbStore:    db,
		llmService: llm,
	}
}

// User lookups, used by the auth middleware and the account handlers.
func (s *ScriptService) GetUserByEmail(email string) (*store.User, error) {
	return s.dbStore.GetUserByEmail(email)
}

func (s *ScriptService) GetUserByID(id int64) (*store.User, error) {
	return s.dbStore.GetUserByID(id)
}

func (s *ScriptService) CreateUser(name, email, passwordHash string) (*store.User, error) {
	return s.dbStore.CreateUser(name, email, passwordHash)
}

// Generate assembles the prompt from the request plus the user's learned
// context, issues the generation call and archives the raw result. The
// archived text is the source of truth; parsed records are derived from it
// again on every read.
func (s *ScriptService) Generate(userID int64, req GenerateRequest) (*store.Script, error) {
	prompt, err := s.buildPrompt(userID, req)
	if err != nil {
		return nil, err
	}
	text, err := s.llmService.GenerateScript(prompt, req.Attachments)
	if err != nil {
		return nil, err
	}

	script := &store.Script{
		UserID: userID,
		Text:   text,
		Goal:   string(req.Goal),
	}
	if len(req.Formats) > 0 {
		labels := make([]string, len(req.Formats))
		for i, f := range req.Formats {
			labels[i] = string(f)
		}
		style := strings.Join(labels, ", ")
		script.Style = &style
	}
	if req.Topic != "" {
		topic := req.Topic
		script.Domain = &topic
	}

	if err := s.dbStore.CreateScript(script); err != nil {
		return nil, fmt.Errorf("failed to archive generated script: %w", err)
	}
	return script, nil
}

// buildPrompt pulls the user's learned patterns and style notes and folds
// them into the generation prompt. Learned context always rides along; the
// user curates it through the evaluation and learning flows instead of
// toggling it per request.
func (s *ScriptService) buildPrompt(userID int64, req GenerateRequest) (string, error) {
	patterns, err := s.dbStore.GetPatternsByUserID(userID)
	if err != nil {
		return "", fmt.Errorf("failed to load learned patterns: %w", err)
	}

	notes, err := s.dbStore.GetStyleNotesByUserID(userID)
	if err != nil {
		return "", fmt.Errorf("failed to load style notes: %w", err)
	}
	noteTexts := make([]string, len(notes))
	for i, n := range notes {
		noteTexts[i] = n.Note
	}

	return BuildGenerationPrompt(req, patterns, noteTexts), nil
}

func (s *ScriptService) ListScripts(userID int64) ([]store.Script, error) {
	return s.dbStore.GetScriptsByUserID(userID)
}

func (s *ScriptService) GetScript(scriptID string, userID int64) (*store.Script, error) {
	return s.dbStore.GetScriptByID(scriptID, userID)
}

// EvaluationInput is the user-asserted outcome of a published script.
type EvaluationInput struct {
	Status string
	Views  string
	Link   string
	Image  *Attachment
}

// EvaluateScript merges an outcome into an archived script. A successful
// outcome runs link verification and, when the model confirms it, learns a
// new pattern; a weak outcome with a retention screenshot runs the
// retention critique. The verification verdict is entirely the model's.
func (s *ScriptService) EvaluateScript(userID int64, scriptID string, input EvaluationInput) (*store.Script, *store.SuccessPattern, error) {
	if input.Status != "success" && input.Status != "weak" {
		return nil, nil, ErrInvalidStatus
	}
	if input.Status == "success" && input.Link == "" {
		return nil, nil, ErrLinkRequired
	}

	script, err := s.dbStore.GetScriptByID(scriptID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load script: %w", err)
	}
	if script == nil {
		return nil, nil, ErrScriptNotFound
	}

	upd := store.EvaluationUpdate{
		Status: input.Status,
		Views:  input.Views,
		Link:   input.Link,
	}
	var learned *store.SuccessPattern

	switch input.Status {
	case "weak":
		if input.Image != nil {
			analysis, err := s.llmService.AnalyzeRetention(*input.Image, input.Link)
			if err != nil {
				// The evaluation itself is still saved without the critique.
				log.Printf("Retention analysis failed for script %s: %v", scriptID, err)
			} else {
				upd.RetentionAnalysis = analysis
			}
		}
	case "success":
		verification := s.verify(input.Link, script.Text)
		upd.Verified = verification.IsVerified
		if verification.IsVerified && verification.Pattern != nil {
			learned, err = s.appendPattern(userID, input.Link, verification.Pattern)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	if err := s.dbStore.UpdateScriptEvaluation(scriptID, userID, upd); err != nil {
		return nil, nil, err
	}

	updated, err := s.dbStore.GetScriptByID(scriptID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reload script: %w", err)
	}
	return updated, learned, nil
}

// AnalyzeRetention runs the retention critique on its own, detached from any
// archived script: just a published video link and its retention-graph
// screenshot. Both are required.
func (s *ScriptService) AnalyzeRetention(image *Attachment, link string) (string, error) {
	if link == "" || image == nil {
		return "", ErrAnalysisInputRequired
	}
	return s.llmService.AnalyzeRetention(*image, link)
}

// LearnPattern is the explicit "teach the system" action: verify the link
// and append the extracted pattern. A nil pattern with a nil error means the
// model did not verify the video.
func (s *ScriptService) LearnPattern(userID int64, link, scriptText string) (*store.SuccessPattern, error) {
	if link == "" && scriptText == "" {
		return nil, ErrLearnInputRequired
	}

	verification := s.verify(link, scriptText)
	if !verification.IsVerified || verification.Pattern == nil {
		return nil, nil
	}
	return s.appendPattern(userID, link, verification.Pattern)
}

// verify runs the remote verification call. Transport failures count as an
// unverified result, matching the contract that malformed or missing remote
// output never raises.
func (s *ScriptService) verify(link, scriptText string) Verification {
	text, err := s.llmService.VerifyScript(link, scriptText)
	if err != nil {
		log.Printf("Verification call failed for link %q: %v", link, err)
		return Verification{}
	}
	return ParseVerification(text)
}

func (s *ScriptService) appendPattern(userID int64, link string, p *VerificationPattern) (*store.SuccessPattern, error) {
	pattern := &store.SuccessPattern{
		UserID:              userID,
		Type:                p.Type,
		HookStyle:           p.HookStyle,
		Structure:           p.Structure,
		Pacing:              p.Pacing,
		PersuasionTechnique: p.PersuasionTechnique,
	}
	if link != "" {
		pattern.VerifiedLink = &link
	}
	if err := s.dbStore.CreatePattern(pattern); err != nil {
		return nil, fmt.Errorf("failed to store learned pattern: %w", err)
	}
	return pattern, nil
}

func (s *ScriptService) ListPatterns(userID int64) ([]store.SuccessPattern, error) {
	return s.dbStore.GetPatternsByUserID(userID)
}

func (s *ScriptService) AddStyleNote(userID int64, note string) (*store.StyleNote, error) {
	return s.dbStore.CreateStyleNote(userID, note)
}

func (s *ScriptService) ListStyleNotes(userID int64) ([]store.StyleNote, error) {
	return s.dbStore.GetStyleNotesByUserID(userID)
}

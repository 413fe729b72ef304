package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"almuhtawa.com/script-studio/internal/auth"
	"almuhtawa.com/script-studio/internal/core"
	"almuhtawa.com/script-studio/internal/script"
	"almuhtawa.com/script-studio/internal/store"
	"github.com/go-chi/chi/v5"
)

// User-facing error copy. Remote failures collapse to one localized message.
const (
	msgGenerationFailed     = "حدث خطأ في الاتصال بالنظام. تأكد من صحة مفتاح الـ API والاتصال بالإنترنت."
	msgBadCredentials       = "البريد الإلكتروني أو كلمة المرور غير صحيحة"
	msgDuplicateEmail       = "هذا البريد الإلكتروني مسجل بالفعل"
	msgLinkRequired         = "يرجى إدخال رابط الفيديو للتحقق."
	msgLearnNotVerified     = "فشل التحقق. يجب أن يحقق الفيديو 100,000 مشاهدة على الأقل للتعلّم منه."
	msgLearnInputMissing    = "يرجى إدخال رابط الفيديو أو نص السكربت."
	msgAnalysisInputMissing = "يرجى إكمال البيانات المطلوبة (رابط وصورة)"
	msgAnalysisFailed       = "حدث خطأ أثناء التحليل. تأكد من جودة الصورة واستقرار الاتصال."
)

type APIHandler struct {
	scriptService *core.ScriptService
}

func NewAPIHandler(ss *core.ScriptService) *APIHandler {
	return &APIHandler{scriptService: ss}
}

func (h *APIHandler) JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := auth.ValidateJWT(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		user, err := h.scriptService.GetUserByID(userID)
		if err != nil {
			log.Printf("Error in JWTAuthMiddleware for user %d: %v", userID, err)
			http.Error(w, "Failed to process user identity", http.StatusInternalServerError)
			return
		}

		if user == nil {
			http.Error(w, "User not found", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), "userID", user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *APIHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}

	existing, err := h.scriptService.GetUserByEmail(req.Email)
	if err != nil {
		log.Printf("Error checking existing user %s: %v", req.Email, err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, msgDuplicateEmail, http.StatusConflict)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password for user %s: %v", req.Email, err)
		http.Error(w, "Failed to process password", http.StatusInternalServerError)
		return
	}

	user, err := h.scriptService.CreateUser(req.Name, req.Email, hashedPassword)
	if err != nil {
		log.Printf("Error creating user %s: %v", req.Email, err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.scriptService.GetUserByEmail(req.Email)
	if err != nil {
		log.Printf("Error getting user %s: %v", req.Email, err)
		http.Error(w, msgBadCredentials, http.StatusUnauthorized)
		return
	}

	if user == nil || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		http.Error(w, msgBadCredentials, http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateJWT(user.ID)
	if err != nil {
		log.Printf("Error generating JWT for user %d: %v", user.ID, err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// AttachmentPayload is one base64-encoded reference file.
type AttachmentPayload struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

func (p AttachmentPayload) decode() (core.Attachment, error) {
	raw, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return core.Attachment{}, err
	}
	return core.Attachment{MIMEType: p.MimeType, Data: raw}, nil
}

type GenerateScriptRequest struct {
	Formats        []string            `json:"formats"`
	Topic          string              `json:"topic"`
	VideoType      string              `json:"video_type"`
	Language       string              `json:"language"`
	Goal           string              `json:"goal"`
	CuriosityLevel string              `json:"curiosity_level"`
	Attachments    []AttachmentPayload `json:"attachments"`
}

// ResultView is one parsed record plus its aligned stage tables, rebuilt
// from the raw text on every request.
type ResultView struct {
	script.Result
	AnalyticalStages []script.StageRow `json:"analytical_stages"`
	SceneStages      []script.StageRow `json:"scene_stages"`
}

func resultViews(raw string) []ResultView {
	results := script.Parse(raw)
	views := make([]ResultView, len(results))
	for i, res := range results {
		views[i] = ResultView{
			Result:           res,
			AnalyticalStages: script.BuildStageTable(res.AnalyticalTable, res.Classification),
			SceneStages:      script.BuildStageTable(res.SuggestedScenesTable, res.Classification),
		}
	}
	return views
}

type ScriptResponse struct {
	*store.Script
	Results []ResultView `json:"results"`
}

func (h *APIHandler) GenerateScriptHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int64)

	var req GenerateScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Topic == "" && len(req.Attachments) == 0 {
		http.Error(w, "A topic or at least one attachment is required", http.StatusBadRequest)
		return
	}

	genReq := core.GenerateRequest{
		Topic:          req.Topic,
		VideoType:      core.VideoType(req.VideoType),
		Language:       core.ScriptLanguage(req.Language),
		Goal:           core.ScriptGoal(req.Goal),
		CuriosityLevel: core.CuriosityLevel(req.CuriosityLevel),
	}
	for _, f := range req.Formats {
		genReq.Formats = append(genReq.Formats, core.ContentFormat(f))
	}
	if genReq.VideoType == "" {
		genReq.VideoType = core.VideoShorts60
	}
	if genReq.Language == "" {
		genReq.Language = core.LanguageEgyptian
	}
	if genReq.Goal == "" {
		genReq.Goal = core.GoalAutoClassify
	}
	if genReq.CuriosityLevel == "" {
		genReq.CuriosityLevel = core.CuriosityProfessional
	}
	for _, p := range req.Attachments {
		att, err := p.decode()
		if err != nil {
			http.Error(w, "Invalid attachment encoding", http.StatusBadRequest)
			return
		}
		genReq.Attachments = append(genReq.Attachments, att)
	}

	generated, err := h.scriptService.Generate(userID, genReq)
	if err != nil {
		log.Printf("Error generating script for user %d: %v", userID, err)
		http.Error(w, msgGenerationFailed, http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ScriptResponse{
		Script:  generated,
		Results: resultViews(generated.Text),
	})
}

func (h *APIHandler) ListScriptsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int64)

	scripts, err := h.scriptService.ListScripts(userID)
	if err != nil {
		log.Printf("Error listing scripts for user %d: %v", userID, err)
		http.Error(w, "Failed to list scripts", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(scripts)
}

func (h *APIHandler) GetScriptHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int64)
	scriptID := chi.URLParam(r, "scriptID")

	s, err := h.scriptService.GetScript(scriptID, userID)
	if err != nil {
		log.Printf("Error getting script %s for user %d: %v", scriptID, userID, err)
		http.Error(w, "Failed to get script", http.StatusInternalServerError)
		return
	}
	if s == nil {
		http.Error(w, "Script not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(ScriptResponse{
		Script:  s,
		Results: resultViews(s.Text),
	})
}

type EvaluateScriptRequest struct {
	Status string             `json:"status"`
	Views  string             `json:"views"`
	Link   string             `json:"link"`
	Image  *AttachmentPayload `json:"image,omitempty"`
}

type EvaluateScriptResponse struct {
	*store.Script
	LearnedPattern *store.SuccessPattern `json:"learned_pattern,omitempty"`
}

func (h *APIHandler) EvaluateScriptHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int64)
	scriptID := chi.URLParam(r, "scriptID")

	var req EvaluateScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	input := core.EvaluationInput{
		Status: req.Status,
		Views:  req.Views,
		Link:   req.Link,
	}
	if req.Image != nil {
		att, err := req.Image.decode()
		if err != nil {
			http.Error(w, "Invalid image encoding", http.StatusBadRequest)
			return
		}
		input.Image = &att
	}

	updated, pattern, err := h.scriptService.EvaluateScript(userID, scriptID, input)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrLinkRequired):
			http.Error(w, msgLinkRequired, http.StatusBadRequest)
		case errors.Is(err, core.ErrInvalidStatus):
			http.Error(w, "Status must be 'success' or 'weak'", http.StatusBadRequest)
		case errors.Is(err, core.ErrScriptNotFound):
			http.Error(w, "Script not found", http.StatusNotFound)
		default:
			log.Printf("Error evaluating script %s for user %d: %v", scriptID, userID, err)
			http.Error(w, "Failed to evaluate script", http.StatusInternalServerError)
		}
		return
	}

	json.NewEncoder(w).Encode(EvaluateScriptResponse{
		Script:         updated,
		LearnedPattern: pattern,
	})
}

type RetentionAnalysisRequest struct {
	Link  string             `json:"link"`
	Image *AttachmentPayload `json:"image"`
}

// AnalyzeRetentionHandler critiques a published video's retention curve from
// its link and a graph screenshot, without touching the script archive.
func (h *APIHandler) AnalyzeRetentionHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int64)

	var req RetentionAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Link == "" || req.Image == nil {
		http.Error(w, msgAnalysisInputMissing, http.StatusBadRequest)
		return
	}
	image, err := req.Image.decode()
	if err != nil {
		http.Error(w, "Invalid image encoding", http.StatusBadRequest)
		return
	}

	analysis, err := h.scriptService.AnalyzeRetention(&image, req.Link)
	if err != nil {
		if errors.Is(err, core.ErrAnalysisInputRequired) {
			http.Error(w, msgAnalysisInputMissing, http.StatusBadRequest)
			return
		}
		log.Printf("Error analyzing retention for user %d: %v", userID, err)
		http.Error(w, msgAnalysisFailed, http.StatusBadGateway)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"analysis": analysis})
}

type LearnPatternRequest struct {
	Link       string `json:"link"`
	ScriptText string `json:"script_text"`
}

type LearnPatternResponse struct {
	Verified bool                  `json:"verified"`
	Message  string                `json:"message,omitempty"`
	Pattern  *store.SuccessPattern `json:"pattern,omitempty"`
}

func (h *APIHandler) LearnPatternHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int64)

	var req LearnPatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	pattern, err := h.scriptService.LearnPattern(userID, req.Link, req.ScriptText)
	if err != nil {
		if errors.Is(err, core.ErrLearnInputRequired) {
			http.Error(w, msgLearnInputMissing, http.StatusBadRequest)
			return
		}
		log.Printf("Error learning pattern for user %d: %v", userID, err)
		http.Error(w, "Failed to learn pattern", http.StatusInternalServerError)
		return
	}

	if pattern == nil {
		json.NewEncoder(w).Encode(LearnPatternResponse{Verified: false, Message: msgLearnNotVerified})
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(LearnPatternResponse{Verified: true, Pattern: pattern})
}

func (h *APIHandler) ListPatternsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int64)

	patterns, err := h.scriptService.ListPatterns(userID)
	if err != nil {
		log.Printf("Error listing patterns for user %d: %v", userID, err)
		http.Error(w, "Failed to list patterns", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(patterns)
}

type StyleNoteRequest struct {
	Note string `json:"note"`
}

func (h *APIHandler) CreateStyleNoteHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int64)

	var req StyleNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Note == "" {
		http.Error(w, "Note cannot be empty", http.StatusBadRequest)
		return
	}

	note, err := h.scriptService.AddStyleNote(userID, req.Note)
	if err != nil {
		log.Printf("Error saving style note for user %d: %v", userID, err)
		http.Error(w, "Failed to save style note", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(note)
}

func (h *APIHandler) ListStyleNotesHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int64)

	notes, err := h.scriptService.ListStyleNotes(userID)
	if err != nil {
		log.Printf("Error listing style notes for user %d: %v", userID, err)
		http.Error(w, "Failed to list style notes", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(notes)
}

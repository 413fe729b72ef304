package store

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "script_studio_store_test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	s, err := NewSQLiteStore(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUserCreateAndLookup(t *testing.T) {
	s := newTestStore(t)

	user, err := s.CreateUser("أحمد", "ahmed@example.com", "hashed")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected a non-zero user id")
	}

	found, err := s.GetUserByEmail("ahmed@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if found == nil || found.ID != user.ID || found.Name != "أحمد" {
		t.Errorf("unexpected user: %+v", found)
	}

	missing, err := s.GetUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown email, got %+v", missing)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateUser("أ", "dup@example.com", "h1"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := s.CreateUser("ب", "dup@example.com", "h2"); err == nil {
		t.Error("expected duplicate email insert to fail")
	}
}

func TestScriptAppendListUpdate(t *testing.T) {
	s := newTestStore(t)
	user, err := s.CreateUser("منى", "mona@example.com", "hashed")
	if err != nil {
		t.Fatal(err)
	}

	style := "القائمة / أفضل 5 أشياء (List / Top 5)"
	domain := "الطبخ المنزلي"
	script := &Script{
		UserID: user.ID,
		Text:   "<<<RESULT_SEPARATOR>>>العنوان: تجربة",
		Goal:   "تصنيف تلقائي (Let AI Classify)",
		Style:  &style,
		Domain: &domain,
	}
	if err := s.CreateScript(script); err != nil {
		t.Fatalf("CreateScript failed: %v", err)
	}
	if script.ID == "" {
		t.Fatal("expected script id to be assigned")
	}

	scripts, err := s.GetScriptsByUserID(user.ID)
	if err != nil {
		t.Fatalf("GetScriptsByUserID failed: %v", err)
	}
	if len(scripts) != 1 {
		t.Fatalf("expected 1 script, got %d", len(scripts))
	}
	got := scripts[0]
	if got.Text != script.Text || got.Goal != script.Goal {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.Style == nil || *got.Style != style || got.Domain == nil || *got.Domain != domain {
		t.Errorf("nullable fields lost: %+v", got)
	}
	if got.Status != nil || got.Verified {
		t.Errorf("expected no evaluation on fresh script: %+v", got)
	}

	upd := EvaluationUpdate{Status: "success", Views: "250000", Link: "https://youtube.com/watch?v=x", Verified: true}
	if err := s.UpdateScriptEvaluation(script.ID, user.ID, upd); err != nil {
		t.Fatalf("UpdateScriptEvaluation failed: %v", err)
	}

	after, err := s.GetScriptByID(script.ID, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if after.Status == nil || *after.Status != "success" || !after.Verified {
		t.Errorf("evaluation not merged: %+v", after)
	}
	if after.Views == nil || *after.Views != "250000" {
		t.Errorf("views not merged: %+v", after)
	}
	// Everything outside the evaluation fields stays as appended.
	if after.Text != script.Text {
		t.Errorf("text changed by evaluation update")
	}
}

func TestScriptOwnershipEnforced(t *testing.T) {
	s := newTestStore(t)
	owner, _ := s.CreateUser("أ", "owner@example.com", "h")
	other, _ := s.CreateUser("ب", "other@example.com", "h")

	script := &Script{UserID: owner.ID, Text: "نص", Goal: "goal"}
	if err := s.CreateScript(script); err != nil {
		t.Fatal(err)
	}

	if got, err := s.GetScriptByID(script.ID, other.ID); err != nil || got != nil {
		t.Errorf("expected nil for other user's lookup, got %+v, %v", got, err)
	}
	if err := s.UpdateScriptEvaluation(script.ID, other.ID, EvaluationUpdate{Status: "weak"}); err == nil {
		t.Error("expected evaluation update by non-owner to fail")
	}
}

func TestPatternAppendOnly(t *testing.T) {
	s := newTestStore(t)
	user, _ := s.CreateUser("سارة", "sara@example.com", "h")

	link := "https://tiktok.com/@x/video/1"
	p := &SuccessPattern{
		UserID:              user.ID,
		Type:                "فيديو سريع الانتشار (Viral)",
		HookStyle:           "سؤال صادم",
		Structure:           "هوك ثم صراع ثم ذروة",
		Pacing:              "سريع",
		PersuasionTechnique: "دليل اجتماعي",
		VerifiedLink:        &link,
	}
	if err := s.CreatePattern(p); err != nil {
		t.Fatalf("CreatePattern failed: %v", err)
	}

	patterns, err := s.GetPatternsByUserID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}
	if patterns[0].HookStyle != p.HookStyle || patterns[0].VerifiedLink == nil || *patterns[0].VerifiedLink != link {
		t.Errorf("round-trip mismatch: %+v", patterns[0])
	}
}

func TestStyleNotesAppendInOrder(t *testing.T) {
	s := newTestStore(t)
	user, _ := s.CreateUser("ليلى", "laila@example.com", "h")

	for _, note := range []string{"افتتاحيات قصيرة", "نبرة ساخرة"} {
		if _, err := s.CreateStyleNote(user.ID, note); err != nil {
			t.Fatalf("CreateStyleNote failed: %v", err)
		}
	}

	notes, err := s.GetStyleNotesByUserID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 2 || notes[0].Note != "افتتاحيات قصيرة" || notes[1].Note != "نبرة ساخرة" {
		t.Errorf("unexpected notes: %+v", notes)
	}
}

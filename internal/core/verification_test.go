package core

import "testing"

func TestParseVerificationEmbeddedJSON(t *testing.T) {
	text := "بعد مراجعة الفيديو، هذا هو التقييم:\n" +
		`{ "isVerified": true, "pattern": { "type": "Viral", "hookStyle": "سؤال", "structure": "قصصية", "pacing": "سريع", "persuasionTechnique": "ندرة" } }` +
		"\nانتهى التقرير."

	v := ParseVerification(text)
	if !v.IsVerified {
		t.Fatal("expected verified result")
	}
	if v.Pattern == nil || v.Pattern.HookStyle != "سؤال" || v.Pattern.PersuasionTechnique != "ندرة" {
		t.Errorf("unexpected pattern: %+v", v.Pattern)
	}
}

func TestParseVerificationNoJSON(t *testing.T) {
	v := ParseVerification("لم أتمكن من التحقق من الفيديو المطلوب.")
	if v.IsVerified || v.Pattern != nil {
		t.Errorf("expected unverified result, got %+v", v)
	}
}

func TestParseVerificationMalformedJSON(t *testing.T) {
	v := ParseVerification(`نتيجة: { "isVerified": true, "pattern": `)
	if v.IsVerified {
		t.Errorf("malformed JSON must degrade to unverified, got %+v", v)
	}
}

func TestParseVerificationFalseVerdict(t *testing.T) {
	v := ParseVerification(`{ "isVerified": false }`)
	if v.IsVerified || v.Pattern != nil {
		t.Errorf("expected unverified result, got %+v", v)
	}
}

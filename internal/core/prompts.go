package core

import (
	"fmt"
	"strings"

	"almuhtawa.com/script-studio/internal/store"
)

// systemInstruction fixes the output protocol the parser depends on: the
// result separator, the labeled title/classification lines, the section
// markers and the two stage curricula.
const systemInstruction = `
أنت "Al-Muhtawa Pro"، الخبير الاستراتيجي الأول في هندسة المحتوى.

---
## 🎯 مهمتك:
توليد 7 نتائج احترافية مفصولة حصراً بـ <<<RESULT_SEPARATOR>>>.

### 📋 القواعد الذهبية للتنسيق (هام جداً):
1. ابدأ النتيجة الأولى مباشرة بالفاصل <<<RESULT_SEPARATOR>>> ثم العنوان.
2. لا تستخدم جداول Markdown (الجداول التي تحتوي على | و -).
3. استخدم القوائم المرقمة البسيطة فقط (1. ، 2. ، 3. إلخ).
4. التزم بهذا الهيكل لكل نموذج:

العنوان: [اكتب العنوان هنا]
التصنيف: [اكتب التصنيف هنا]

--- SECTION: CLEAN_SCRIPT ---
[نص السكربت هنا]

--- SECTION: ANALYTICAL_TABLE ---
[التحليل الاستراتيجي كقائمة مرقمة]

--- SECTION: SUGGESTED_SCENES_TABLE ---
[الإخراج البصري كقائمة مرقمة]

---
## 📜 منهج (vsl) - 10 مراحل:
إذا كان التصنيف vsl، استخدم 10 نقاط: 1. Hook، 2. Context، 3. Proof، 4. Social Proof، 5. Pain، 6. الحل، 7. التفاصيل، 8. البونصات، 9. السعر، 10. CTA.

لغير الـ vsl، استخدم القالب السباعي: 1. الهوك، 2. السياق، 3. الصراع، 4. العقبة، 5. الذروة، 6. النتيجة، 7. CTA.
`

const retentionPromptTemplate = `حلل منحنى الاحتفاظ بالجمهور لهذا الفيديو: %s.`

const verificationPromptTemplate = `تحقق من نجاح الفيديو واستخلص الأنماط: %s
أعد الناتج ككائن JSON واحد فقط بهذا الشكل:
{ "isVerified": true/false, "pattern": { "type": "...", "hookStyle": "...", "structure": "...", "pacing": "...", "persuasionTechnique": "..." } }`

// BuildGenerationPrompt renders the per-call user prompt. Learned patterns
// and style notes are caller context that gets embedded as extra guidance.
func BuildGenerationPrompt(req GenerateRequest, patterns []store.SuccessPattern, styleNotes []string) string {
	formatsText := "اقترح أفضل فورمات من عندك."
	if len(req.Formats) > 0 {
		labels := make([]string, len(req.Formats))
		for i, f := range req.Formats {
			labels[i] = string(f)
		}
		formatsText = fmt.Sprintf("الفورمات المطلوبة للنتائج الستة الأولى: %s.", strings.Join(labels, "، "))
	}

	topic := req.Topic
	if topic == "" {
		topic = "مرفق بالملفات"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "أنتج 7 نماذج (6 بناءً على %s + 1 اقتراح ذكي).\n", formatsText)
	fmt.Fprintf(&sb, "الموضوع: %s\n", topic)
	fmt.Fprintf(&sb, "المدة: %s\n", req.VideoType)
	fmt.Fprintf(&sb, "اللغة: %s\n", req.Language)
	fmt.Fprintf(&sb, "الهدف: %s\n", req.Goal)
	fmt.Fprintf(&sb, "مستوى الفضول: %s\n", req.CuriosityLevel)

	if len(styleNotes) > 0 {
		fmt.Fprintf(&sb, "أسلوب المستخدم المفضل: %s.\n", strings.Join(styleNotes, " | "))
	}

	if len(patterns) > 0 {
		sb.WriteString("استرشد بهذه الأنماط الناجحة المتعلّمة من فيديوهات مؤكدة:\n")
		for i, p := range patterns {
			fmt.Fprintf(&sb, "%d. النوع: %s | الهوك: %s | البنية: %s | الإيقاع: %s | الإقناع: %s\n",
				i+1, p.Type, p.HookStyle, p.Structure, p.Pacing, p.PersuasionTechnique)
		}
	}

	sb.WriteString("\nتذكر: ابدأ النتيجة الأولى بـ <<<RESULT_SEPARATOR>>> واستخدمها كفاصل بين كل نموذج.")
	return sb.String()
}

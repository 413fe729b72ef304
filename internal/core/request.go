package core

// The request vocabulary is a fixed set of Arabic labels. The labels go into
// the prompt verbatim, so they double as display strings.

type VideoType string

const (
	VideoShorts60 VideoType = "Shorts (60 ثانية)"
	VideoMin2     VideoType = "فيديو (2 دقيقة)"
	VideoMin3     VideoType = "فيديو (3 دقيقة)"
	VideoMin4     VideoType = "فيديو (4 دقيقة)"
	VideoMin5     VideoType = "فيديو (5 دقيقة)"
	VideoMin6     VideoType = "فيديو (6 دقيقة)"
	VideoMin7     VideoType = "فيديو (7 دقيقة)"
	VideoMin8     VideoType = "فيديو (8 دقيقة)"
	VideoMin9     VideoType = "فيديو (9 دقيقة)"
	VideoMin10    VideoType = "فيديو (10 دقيقة)"
)

type ScriptGoal string

const (
	GoalViral        ScriptGoal = "فيديو سريع الانتشار (Viral)"
	GoalEducational  ScriptGoal = "فيديو تعليمي قصصي (Educational)"
	GoalVSL          ScriptGoal = "فيديو بيعي (VSL Blueprint)"
	GoalAutoClassify ScriptGoal = "تصنيف تلقائي (Let AI Classify)"
)

type ContentFormat string

const (
	FormatVSL         ContentFormat = "(vsl)"
	FormatChallenges  ContentFormat = "التحديات والتجارب (Challenges & Experiments)"
	FormatLists       ContentFormat = "القائمة / أفضل 5 أشياء (List / Top 5)"
	FormatComparison  ContentFormat = "المقارنة / الأغلى والأرخص (Comparison)"
	FormatMythBusting ContentFormat = "كسر المعتقدات / تصحيح المفاهيم (Myth Busting)"
	FormatWhatIf      ContentFormat = "ماذا لو؟ (What If Scenarios)"
	FormatViralVSL    ContentFormat = "فيديو البيع القصصي / اختبار المنتج (Viral VSL / Product Test)"
	FormatSketch      ContentFormat = "الاسكتش / الحوار (Sketch / Dialogue)"
	FormatVlogs       ContentFormat = "المسابقات / الفلوجات (Competitions / Vlogs)"
	FormatQA          ContentFormat = "الأسئلة / المقابلات (Q&A / Interviews)"
)

type ScriptLanguage string

const (
	LanguageEgyptian     ScriptLanguage = "لهجة مصرية"
	LanguageSaudi        ScriptLanguage = "لهجة سعودية"
	LanguageArabic       ScriptLanguage = "لغة عربية (فصحى)"
	LanguageEnglish      ScriptLanguage = "لغة انجليزية"
	LanguageEnglishSlang ScriptLanguage = "لغة انجليزية عامية"
)

type CuriosityLevel string

const (
	CuriosityBeginner     CuriosityLevel = "مستوى مبتدئ (Beginner)"
	CuriosityIntermediate CuriosityLevel = "مستوى متوسط (Intermediate)"
	CuriosityProfessional CuriosityLevel = "مستوى احترافي (Professional)"
)

// Attachment is one reference file sent alongside the prompt as a raw
// binary part.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// GenerateRequest carries the parameters of one generation call. It is
// built fresh per submission and never persisted.
type GenerateRequest struct {
	Formats        []ContentFormat
	Topic          string
	VideoType      VideoType
	Language       ScriptLanguage
	Goal           ScriptGoal
	CuriosityLevel CuriosityLevel
	Attachments    []Attachment
}

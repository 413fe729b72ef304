package script

import (
	"reflect"
	"strings"
	"testing"
)

// segment builds a well-formed model segment long enough to pass the
// minimum-length filter.
func segment(title string) string {
	return "العنوان: " + title + "\n" +
		"التصنيف: List\n" +
		"--- SECTION: CLEAN_SCRIPT ---\n" +
		"نص تجريبي طويل بما يكفي ليتجاوز حد الطول الأدنى للمقطع الواحد\n" +
		"--- SECTION: ANALYTICAL_TABLE ---\n" +
		"1. شيء\n" +
		"--- SECTION: SUGGESTED_SCENES_TABLE ---\n" +
		"1. مشهد"
}

func TestParseFewerThanCap(t *testing.T) {
	raw := ResultSeparator + segment("واحد") +
		ResultSeparator + segment("اثنان") +
		ResultSeparator + segment("ثلاثة")

	results := Parse(raw)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	want := []string{"واحد", "اثنان", "ثلاثة"}
	for i, w := range want {
		if results[i].Title != w {
			t.Errorf("result %d: expected title %q, got %q", i, w, results[i].Title)
		}
	}
}

func TestParseCapsAtSeven(t *testing.T) {
	var sb strings.Builder
	titles := []string{"١", "٢", "٣", "٤", "٥", "٦", "٧", "٨", "٩"}
	for _, title := range titles {
		sb.WriteString(ResultSeparator)
		sb.WriteString(segment(title))
	}

	results := Parse(sb.String())
	if len(results) != 7 {
		t.Fatalf("expected 7 results, got %d", len(results))
	}
	// First 7 in document order, extras silently dropped.
	for i := 0; i < 7; i++ {
		if results[i].Title != titles[i] {
			t.Errorf("result %d: expected title %q, got %q", i, titles[i], results[i].Title)
		}
	}
}

func TestParseDiscardsShortFragments(t *testing.T) {
	raw := "مقدمة قصيرة" + ResultSeparator + segment("الوحيد") + ResultSeparator + "  \n "
	results := Parse(raw)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Title != "الوحيد" {
		t.Errorf("unexpected title %q", results[0].Title)
	}
}

func TestParseDefaultsWhenMarkersMissing(t *testing.T) {
	raw := ResultSeparator + strings.Repeat("كلام حر بلا أي علامات تنسيق معروفة على الإطلاق. ", 4)
	results := Parse(raw)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Title != defaultTitle {
		t.Errorf("expected default title %q, got %q", defaultTitle, r.Title)
	}
	if r.Classification != defaultClassification {
		t.Errorf("expected default classification %q, got %q", defaultClassification, r.Classification)
	}
	if r.CleanScript != "" || r.AnalyticalTable != "" || r.SuggestedScenesTable != "" {
		t.Errorf("expected empty sections, got %+v", r)
	}
}

func TestParseEmptyLabelValueStaysEmpty(t *testing.T) {
	raw := ResultSeparator +
		"العنوان:\n" +
		"--- SECTION: CLEAN_SCRIPT ---\n" +
		"نص تجريبي طويل بما يكفي ليتجاوز حد الطول الأدنى للمقطع الواحد\n" +
		"--- SECTION: ANALYTICAL_TABLE ---\n" +
		"1. شيء"

	results := Parse(raw)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	// A present label with nothing after it yields an empty value; the
	// default applies only when the label line is missing altogether.
	if r.Title != "" {
		t.Errorf("expected empty title, got %q", r.Title)
	}
	if r.Classification != defaultClassification {
		t.Errorf("expected default classification %q, got %q", defaultClassification, r.Classification)
	}
}

func TestParseEmphasisAroundMarkers(t *testing.T) {
	raw := ResultSeparator +
		"**العنوان:** تجربة النجوم\n" +
		"**التصنيف:** vsl\n" +
		"**--- SECTION: CLEAN_SCRIPT ---**\n" +
		"محتوى السكربت المزخرف بما يكفي ليتجاوز الحد الأدنى للطول\n" +
		"**--- SECTION: ANALYTICAL_TABLE ---**\n" +
		"1. الهوك: افتتاحية"

	results := Parse(raw)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Title != "تجربة النجوم" {
		t.Errorf("unexpected title %q", r.Title)
	}
	if r.Classification != "vsl" {
		t.Errorf("unexpected classification %q", r.Classification)
	}
	if !strings.Contains(r.CleanScript, "محتوى السكربت") {
		t.Errorf("unexpected clean script %q", r.CleanScript)
	}
	if r.AnalyticalTable != "1. الهوك: افتتاحية" {
		t.Errorf("unexpected analytical table %q", r.AnalyticalTable)
	}
}

func TestParseEmptySectionBody(t *testing.T) {
	raw := ResultSeparator +
		"العنوان: فارغ\n" +
		"التصنيف: List\n" +
		"هذه الفقرة موجودة فقط كي يتجاوز المقطع حد الطول الأدنى المطلوب للقبول.\n" +
		"--- SECTION: CLEAN_SCRIPT ---\n" +
		"--- SECTION: ANALYTICAL_TABLE ---\n" +
		"1. شيء"

	results := Parse(raw)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	// A header with no body yields an empty string, not a placeholder.
	if results[0].CleanScript != "" {
		t.Errorf("expected empty clean script, got %q", results[0].CleanScript)
	}
	if results[0].AnalyticalTable != "1. شيء" {
		t.Errorf("unexpected analytical table %q", results[0].AnalyticalTable)
	}
}

func TestParseIdempotent(t *testing.T) {
	raw := ResultSeparator + segment("أول") + ResultSeparator + segment("ثاني")
	first := Parse(raw)
	second := Parse(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing the same text twice diverged:\n%+v\n%+v", first, second)
	}
}

func TestParseEndToEndScenario(t *testing.T) {
	raw := ResultSeparator +
		"العنوان: تجربة\nالتصنيف: List\n" +
		"--- SECTION: CLEAN_SCRIPT ---\nنص تجريبي\n" +
		"--- SECTION: ANALYTICAL_TABLE ---\n1. شيء\n" +
		"--- SECTION: SUGGESTED_SCENES_TABLE ---\n1. مشهد"

	results := Parse(raw)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Title != "تجربة" {
		t.Errorf("unexpected title %q", r.Title)
	}
	if r.Classification != "List" {
		t.Errorf("unexpected classification %q", r.Classification)
	}
	if r.CleanScript != "نص تجريبي" {
		t.Errorf("unexpected clean script %q", r.CleanScript)
	}
	if !strings.Contains(r.AnalyticalTable, "1. شيء") {
		t.Errorf("unexpected analytical table %q", r.AnalyticalTable)
	}
	if !strings.Contains(r.SuggestedScenesTable, "1. مشهد") {
		t.Errorf("unexpected scenes table %q", r.SuggestedScenesTable)
	}
}

package script

import (
	"regexp"
	"strconv"
	"strings"
)

// stagePlaceholder fills a stage the model returned no numbered line for.
const stagePlaceholder = "جاري التحليل..."

// The two fixed narrative templates. A sales-letter (vsl) classification
// follows the 10-stage curriculum, everything else the 7-stage one.
var (
	vslStages = []string{
		"الـ Hook", "الـ Context", "الـ Proof", "Social Proof", "الـ Pain",
		"الحل", "التفاصيل", "البونصات", "السعر والضمان", "الـ CTA",
	}
	defaultStages = []string{
		"الهوك", "السياق", "الصراع", "العقبة", "الذروة", "النتيجة", "الـ CTA",
	}
)

// StageRow is one row of the aligned stage table.
type StageRow struct {
	Number  int    `json:"number"`
	Label   string `json:"label"`
	Content string `json:"content"`
}

var (
	numberedLineRe = regexp.MustCompile(`^\d+[\.\)-]`)
	lineMarkerRe   = regexp.MustCompile(`^\d+[\.\)-]\s*`)
)

// BuildStageTable joins the fixed stage template against whatever numbered
// lines the model produced. Content is matched to a stage by its leading
// index; stages are never reordered and a missing line yields a placeholder.
func BuildStageTable(text, classification string) []StageRow {
	stages := defaultStages
	if strings.Contains(strings.ToLower(classification), "vsl") {
		stages = vslStages
	}

	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		l = strings.TrimPrefix(l, "**")
		l = strings.TrimSuffix(l, "**")
		if numberedLineRe.MatchString(l) {
			lines = append(lines, l)
		}
	}

	rows := make([]StageRow, len(stages))
	for i, label := range stages {
		num := i + 1
		rows[i] = StageRow{
			Number:  num,
			Label:   label,
			Content: stageContent(lines, num),
		}
	}
	return rows
}

func stageContent(lines []string, num int) string {
	n := strconv.Itoa(num)
	for _, l := range lines {
		if !strings.HasPrefix(l, n+".") && !strings.HasPrefix(l, n+"-") && !strings.HasPrefix(l, n+")") {
			continue
		}
		content := strings.TrimSpace(lineMarkerRe.ReplaceAllString(l, ""))
		// Lines often come back as "label: content"; keep only the content.
		if idx := strings.Index(content, ":"); idx >= 0 {
			content = strings.TrimSpace(content[idx+1:])
		}
		return content
	}
	return stagePlaceholder
}

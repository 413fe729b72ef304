// Package script turns the raw text the model returns into typed records.
// The model's output is natural language held together by literal markers,
// so everything here is best-effort: a field that cannot be found degrades
// to a default instead of failing.
package script

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// ResultSeparator delimits individual results inside one model response.
	ResultSeparator = "<<<RESULT_SEPARATOR>>>"

	// Segments shorter than this are separator artifacts, not results.
	minSegmentLength = 50

	// The model is asked for 7 results; anything past that is dropped.
	maxResults = 7

	defaultTitle          = "نموذج استراتيجي"
	defaultClassification = "فيديو احترافي"
)

// Section marker names used by the model inside each segment.
const (
	SectionCleanScript     = "CLEAN_SCRIPT"
	SectionAnalyticalTable = "ANALYTICAL_TABLE"
	SectionSuggestedScenes = "SUGGESTED_SCENES_TABLE"
)

// Result is one parsed segment of a generated response.
type Result struct {
	Title                string `json:"title"`
	Classification       string `json:"classification"`
	CleanScript          string `json:"clean_script"`
	AnalyticalTable      string `json:"analytical_table"`
	SuggestedScenesTable string `json:"suggested_scenes_table"`
}

var (
	titleRe = regexp.MustCompile(`(?m)^(?:\*\*)*العنوان:(?:\*\*)*[ \t]*(.*)$`)
	classRe = regexp.MustCompile(`(?m)^(?:\*\*)*التصنيف:(?:\*\*)*[ \t]*(.*)$`)

	sectionRes = map[string]*regexp.Regexp{
		SectionCleanScript:     sectionRegexp(SectionCleanScript),
		SectionAnalyticalTable: sectionRegexp(SectionAnalyticalTable),
		SectionSuggestedScenes: sectionRegexp(SectionSuggestedScenes),
	}
)

// sectionRegexp matches one `--- SECTION: <name> ---` block, tolerating
// emphasis asterisks around the marker. The block ends at the next section
// marker, the next result separator, or end of input.
func sectionRegexp(name string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`(?is)(?:\*\*)*--- SECTION: %s ---(?:\*\*)*(.*?)(?:(?:\*\*)*--- SECTION:|<<<|\z)`,
		regexp.QuoteMeta(name),
	))
}

// Parse splits raw model output into at most 7 results, in document order.
// It never fails: segments with missing fields get the documented defaults
// and absent sections come back as empty strings.
func Parse(raw string) []Result {
	var results []Result
	for _, seg := range strings.Split(raw, ResultSeparator) {
		seg = strings.TrimSpace(seg)
		if utf8.RuneCountInString(seg) <= minSegmentLength {
			continue
		}
		results = append(results, parseSegment(seg))
		if len(results) == maxResults {
			break
		}
	}
	return results
}

func parseSegment(seg string) Result {
	return Result{
		Title:                labeledValue(titleRe, seg, defaultTitle),
		Classification:       labeledValue(classRe, seg, defaultClassification),
		CleanScript:          extractSection(seg, SectionCleanScript),
		AnalyticalTable:      extractSection(seg, SectionAnalyticalTable),
		SuggestedScenesTable: extractSection(seg, SectionSuggestedScenes),
	}
}

// labeledValue falls back only when the label line is absent entirely; a
// present label with an empty value stays empty.
func labeledValue(re *regexp.Regexp, seg, fallback string) string {
	m := re.FindStringSubmatch(seg)
	if m == nil {
		return fallback
	}
	return strings.TrimSpace(strings.ReplaceAll(m[1], "*", ""))
}

func extractSection(seg, name string) string {
	m := sectionRes[name].FindStringSubmatch(seg)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

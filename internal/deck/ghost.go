package deck

import (
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// ghostTexts are the sample strings slide masters leave in inherited
// placeholders. Matching is bidirectional substring after trimming, so both
// truncated and elaborated variants are caught.
var ghostTexts = []string{
	"마스터 텍스트 스타일 편집",
	"마스터 텍스트 스타일을 편집합니다",
	"마스터 제목 스타일 편집",
	"제목을 추가하려면 클릭하십시오",
	"제목을 입력하십시오",
	"부제목을 입력하십시오",
	"텍스트를 입력하십시오",
	"내용을 입력하십시오",
	"텍스트를 추가하려면 클릭하십시오",
	"Click to edit Master text styles",
	"Click to edit Master title style",
	"Click to add title",
	"Click to add text",
	"Click to add subtitle",
}

// isGhostText reports whether s is master sample text.
func isGhostText(s string) bool {
	s = strings.TrimRight(strings.TrimSpace(s), ".")
	if s == "" {
		return false
	}
	for _, ghost := range ghostTexts {
		if strings.Contains(s, ghost) || strings.Contains(ghost, s) {
			return true
		}
	}
	return false
}

// clearGhostPlaceholders removes empty or sample-text placeholders that a
// template layout copied onto the slide, keeping the listed indices.
func clearGhostPlaceholders(sl *ppt.Slide, used ...int) {
	keep := make(map[int]bool, len(used))
	for _, idx := range used {
		keep[idx] = true
	}

	var doomed []*ppt.PlaceholderShape
	for _, sh := range sl.GetShapes() {
		ph, ok := sh.(*ppt.PlaceholderShape)
		if !ok {
			continue
		}
		if keep[ph.GetPlaceholderIndex()] {
			continue
		}
		text := strings.TrimSpace(placeholderText(ph))
		if text == "" || isGhostText(text) {
			doomed = append(doomed, ph)
		}
	}
	for _, ph := range doomed {
		ph.Remove(sl)
	}
}

func placeholderText(ph *ppt.PlaceholderShape) string {
	var b strings.Builder
	for _, p := range ph.GetParagraphs() {
		for _, el := range p.GetElements() {
			if run, ok := el.(*ppt.TextRun); ok {
				b.WriteString(run.GetText())
			}
		}
	}
	return b.String()
}

package output

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	fontColor = "000000"
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reTask    = regexp.MustCompile(`^[\-\*]\s+\[( |x|X)\]\s+(.+)$`)
	reBullet  = regexp.MustCompile(`^[\-\*\+]\s+(.+)$`)
	reQuote   = regexp.MustCompile(`^>\s?(.*)$`)
)

// writeDocx renders a Markdown summary into a styled docx file. Only the
// constructs summaries use are recognised: headings, bullets, task items,
// numbered items, quotes and **bold** runs. Nested indentation is flattened.
func writeDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	inFence := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			addPlainRun(doc.AddParagraph(""), line)
			continue
		}
		if trimmed == "" || trimmed == "---" {
			continue
		}

		p := doc.AddParagraph("")
		switch {
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			addStyledRun(p, m[2], true, headingSize(len(m[1])))
		case reTask.MatchString(trimmed):
			m := reTask.FindStringSubmatch(trimmed)
			box := "☐ "
			if m[1] != " " {
				box = "☑ "
			}
			addRichText(p, box+m[2])
		case reBullet.MatchString(trimmed):
			addRichText(p, "• "+reBullet.FindStringSubmatch(trimmed)[1])
		case reQuote.MatchString(trimmed):
			addRichText(p, "“"+reQuote.FindStringSubmatch(trimmed)[1]+"”")
		default:
			// numbered items keep their own numbering
			addRichText(p, trimmed)
		}
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color(fontColor)
	if bold {
		run.Bold(true)
	}
}

func addPlainRun(p *docx.Paragraph, text string) {
	p.AddText(text).Font("Courier New").Size(fontSize - 2).Color(fontColor)
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color(fontColor)
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color(fontColor).Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}

package artifact

import (
	"regexp"
	"strings"
)

// Thresholds for treating a reply as a document. They are deliberately high so
// that moderately long conversational answers stay inline.
const (
	MinStructuredLength = 1200
	MinStructuredWords  = 200
	MinStructureSignals = 3
	MinParagraphs       = 4
)

var (
	paragraphSeparator = regexp.MustCompile(`\n[ \t\r]*\n`)
	headerLine         = regexp.MustCompile(`^#{1,6}\s+\S`)
	numberedLine       = regexp.MustCompile(`^\s*\d+[.)]\s+\S`)
	bulletLine         = regexp.MustCompile(`^\s*[-*+]\s+\S`)
	blockquoteLine     = regexp.MustCompile(`^\s*>\s?\S`)
	fenceLine          = regexp.MustCompile("^\\s*```")
	tableLine          = regexp.MustCompile(`^\s*\|.*\|.*\|`)
	ruleLine           = regexp.MustCompile(`^\s*(?:-{3,}|\*{3,}|_{3,})\s*$`)
)

// Signal names a structural feature detected in a reply.
type Signal string

const (
	SignalParagraphs     Signal = "paragraphs"
	SignalHeader         Signal = "header"
	SignalNumberedList   Signal = "numbered_list"
	SignalBulletList     Signal = "bullet_list"
	SignalBlockElement   Signal = "block_element"
	SignalMultiHeader    Signal = "multi_header"
	SignalLongNumbered   Signal = "long_numbered_list"
	SignalLongBulletList Signal = "long_bullet_list"
)

// StructureReport is the full breakdown behind IsStructuredContent.
type StructureReport struct {
	Length    int
	Words     int
	Signals   []Signal
	Qualified bool
}

// Score returns the number of distinct structural signals found.
func (r StructureReport) Score() int {
	return len(r.Signals)
}

// IsStructuredContent reports whether a reply is long and structurally rich
// enough to be detached into a document.
func IsStructuredContent(content string) bool {
	return AnalyzeStructure(content).Qualified
}

// AnalyzeStructure scores a reply. Length and word count gate the scoring;
// below either minimum no signals are computed.
func AnalyzeStructure(content string) StructureReport {
	report := StructureReport{Length: runeLen(content)}
	if report.Length < MinStructuredLength {
		return report
	}

	report.Words = len(strings.Fields(content))
	if report.Words < MinStructuredWords {
		return report
	}

	lines := strings.Split(content, "\n")
	scan := scanLines(lines)

	if countParagraphs(content) >= MinParagraphs {
		report.Signals = append(report.Signals, SignalParagraphs)
	}
	if scan.headers > 0 {
		report.Signals = append(report.Signals, SignalHeader)
	}
	if scan.maxNumberedRun >= 2 {
		report.Signals = append(report.Signals, SignalNumberedList)
	}
	if scan.maxBulletRun >= 2 {
		report.Signals = append(report.Signals, SignalBulletList)
	}
	if scan.blockElement {
		report.Signals = append(report.Signals, SignalBlockElement)
	}
	if scan.separatedHeaders >= 2 {
		report.Signals = append(report.Signals, SignalMultiHeader)
	}
	if scan.maxNumberedRun >= 3 {
		report.Signals = append(report.Signals, SignalLongNumbered)
	}
	if scan.maxBulletRun >= 3 {
		report.Signals = append(report.Signals, SignalLongBulletList)
	}

	report.Qualified = report.Score() >= MinStructureSignals
	return report
}

func countParagraphs(content string) int {
	n := 0
	for _, block := range paragraphSeparator.Split(content, -1) {
		if strings.TrimSpace(block) != "" {
			n++
		}
	}
	return n
}

type lineScan struct {
	headers          int
	separatedHeaders int
	maxNumberedRun   int
	maxBulletRun     int
	blockElement     bool
}

func scanLines(lines []string) lineScan {
	var (
		scan         lineScan
		numberedRun  int
		bulletRun    int
		seenHeader   bool
		contentAfter bool
	)

	for _, line := range lines {
		switch {
		case numberedLine.MatchString(line):
			numberedRun++
		default:
			numberedRun = 0
		}
		switch {
		case bulletLine.MatchString(line) && !ruleLine.MatchString(line):
			bulletRun++
		default:
			bulletRun = 0
		}
		scan.maxNumberedRun = max(scan.maxNumberedRun, numberedRun)
		scan.maxBulletRun = max(scan.maxBulletRun, bulletRun)

		if blockquoteLine.MatchString(line) || fenceLine.MatchString(line) ||
			tableLine.MatchString(line) || ruleLine.MatchString(line) {
			scan.blockElement = true
		}

		if headerLine.MatchString(line) {
			scan.headers++
			// a header only counts toward the multi-header signal when real
			// content separates it from the previous one
			if !seenHeader || contentAfter {
				scan.separatedHeaders++
			}
			seenHeader = true
			contentAfter = false
			continue
		}
		if seenHeader && strings.TrimSpace(line) != "" {
			contentAfter = true
		}
	}
	return scan
}

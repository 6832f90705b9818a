package fanout

import (
	"strings"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

// BuildResultBlocks converts a markdown result into Slack Block Kit blocks.
// Slack renders at most one rich table per message, so the first markdown
// table becomes per-row "card" sections and any later table is posted as
// preformatted text.
func BuildResultBlocks(text string, success bool) []goslack.Block {
	header := ":white_check_mark: *Agent run complete*"
	if !success {
		header = ":x: *Agent run failed*"
	}
	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
	}

	tableCount := 0
	for _, segment := range splitTables(text) {
		if !segment.isTable {
			body := strings.TrimSpace(segment.text)
			if body == "" {
				continue
			}
			blocks = append(blocks, goslack.NewSectionBlock(
				goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(body), false, false),
				nil, nil,
			))
			continue
		}
		tableCount++
		if tableCount == 1 {
			blocks = append(blocks, tableCardBlocks(segment.text)...)
		} else {
			blocks = append(blocks, goslack.NewSectionBlock(
				goslack.NewTextBlockObject(goslack.MarkdownType, "```"+truncateForSlack(segment.text)+"```", false, false),
				nil, nil,
			))
		}
	}
	return blocks
}

type textSegment struct {
	text    string
	isTable bool
}

// splitTables partitions markdown into prose and table segments. A table is a
// run of consecutive lines that each start and end with a pipe.
func splitTables(text string) []textSegment {
	var segments []textSegment
	var current []string
	inTable := false

	flush := func() {
		if len(current) == 0 {
			return
		}
		segments = append(segments, textSegment{text: strings.Join(current, "\n"), isTable: inTable})
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		isTableLine := strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") && len(trimmed) > 1
		if isTableLine != inTable {
			flush()
			inTable = isTableLine
		}
		current = append(current, line)
	}
	flush()
	return segments
}

// tableCardBlocks renders a markdown table as one section block per data row,
// which reads cleanly on mobile where wide tables wrap badly.
func tableCardBlocks(table string) []goslack.Block {
	rows := parseTableRows(table)
	if len(rows) < 2 {
		return []goslack.Block{goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, "```"+truncateForSlack(table)+"```", false, false),
			nil, nil,
		)}
	}
	headers := rows[0]

	var blocks []goslack.Block
	for _, row := range rows[1:] {
		var lines []string
		for i, cell := range row {
			if i >= len(headers) {
				break
			}
			lines = append(lines, "*"+headers[i]+":* "+cell)
		}
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(strings.Join(lines, "\n")), false, false),
			nil, nil,
		))
	}
	return blocks
}

// parseTableRows splits a markdown table into cell values, dropping the
// header separator row.
func parseTableRows(table string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(table, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		trimmed = strings.TrimPrefix(trimmed, "|")
		trimmed = strings.TrimSuffix(trimmed, "|")
		cells := strings.Split(trimmed, "|")
		separator := true
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
			if strings.Trim(cells[i], ":- ") != "" {
				separator = false
			}
		}
		if separator {
			continue
		}
		rows = append(rows, cells)
	}
	return rows
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}

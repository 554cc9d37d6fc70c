package csvimport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"quizdeck/internal/domain"
)

// Structural failure messages surfaced verbatim to the uploader.
const (
	msgEmptyFile    = "CSV file is empty."
	msgUnparseable  = "Invalid CSV format. Please check your file."
	msgUnknownShape = "Invalid CSV format. Required columns: either 'question', 'options', 'answer' OR 'question', 'option1', 'option2', ..., 'answer'"
)

// shape identifies which of the two supported column layouts a header uses.
type shape int

const (
	shapeUnknown shape = iota
	shapeJoined        // single "options" column holding comma-separated choices
	shapeColumns       // numbered "option1".."optionN" columns
)

// layout records where the relevant columns sit in the header row.
// Indexes are -1 when the column is absent.
type layout struct {
	kind       shape
	question   int
	options    int
	answer     int
	optionCols []int // shapeColumns only, in header order
}

// classify inspects the header row and picks a layout. A literal "options"
// column wins over numbered option columns when both appear.
func classify(header []string) layout {
	l := layout{kind: shapeUnknown, question: -1, options: -1, answer: -1}
	for i, name := range header {
		switch name {
		case "question":
			if l.question < 0 {
				l.question = i
			}
		case "options":
			if l.options < 0 {
				l.options = i
			}
		case "answer":
			if l.answer < 0 {
				l.answer = i
			}
		}
		if name != "options" && strings.HasPrefix(name, "option") {
			l.optionCols = append(l.optionCols, i)
		}
	}
	if l.options >= 0 {
		l.kind = shapeJoined
	} else if len(l.optionCols) > 0 {
		l.kind = shapeColumns
	}
	return l
}

// Parse converts raw CSV bytes into an ordered list of validated questions.
// The first row must be a header naming one of the two supported layouts.
// Row numbers in error messages are 1-based and count data rows only.
// Parse is a pure transform: it never persists anything and a single bad
// row fails the whole batch.
func Parse(data []byte) ([]domain.Question, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.NewCSVStructureError(msgUnparseable)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	if len(records) <= 1 {
		return nil, domain.NewCSVStructureError(msgEmptyFile)
	}

	l := classify(records[0])
	switch l.kind {
	case shapeJoined:
		return parseJoined(l, records[1:])
	case shapeColumns:
		return parseColumns(l, records[1:])
	default:
		return nil, domain.NewCSVStructureError(msgUnknownShape)
	}
}

// parseJoined handles the comma-separated options layout. Options and the
// answer are trimmed; the answer must match one option exactly.
func parseJoined(l layout, rows [][]string) ([]domain.Question, error) {
	var missing []string
	if l.question < 0 {
		missing = append(missing, "question")
	}
	if l.answer < 0 {
		missing = append(missing, "answer")
	}
	if len(missing) > 0 {
		return nil, domain.NewCSVStructureError("Missing required columns: " + strings.Join(missing, ", "))
	}

	questions := make([]domain.Question, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 1

		rawOptions := cell(row, l.options)
		options := strings.Split(rawOptions, ",")
		for j := range options {
			options[j] = strings.TrimSpace(options[j])
		}
		if len(options) < 2 {
			return nil, domain.NewCSVRowError(rowNum, fmt.Sprintf("Row %d: At least 2 options are required", rowNum))
		}

		rawAnswer := cell(row, l.answer)
		answer := strings.TrimSpace(rawAnswer)
		if !containsOption(options, answer) {
			return nil, domain.NewCSVRowError(rowNum, fmt.Sprintf("Row %d: Answer '%s' is not in the options list", rowNum, rawAnswer))
		}

		questions = append(questions, domain.Question{
			Text:    cell(row, l.question),
			Options: options,
			Answer:  answer,
		})
	}
	return questions, nil
}

// parseColumns handles the numbered-option layout. Empty option cells are
// skipped. A digit-only answer is a 1-based index into the collected
// options; otherwise the answer matches exactly first, then
// case-insensitively adopting the stored option's casing.
func parseColumns(l layout, rows [][]string) ([]domain.Question, error) {
	var missing []string
	if l.question < 0 {
		missing = append(missing, "question")
	}
	if l.answer < 0 {
		missing = append(missing, "answer")
	}
	if len(missing) > 0 {
		return nil, domain.NewCSVStructureError("Missing required columns: " + strings.Join(missing, ", "))
	}

	questions := make([]domain.Question, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 1

		var options []string
		for _, idx := range l.optionCols {
			if v := cell(row, idx); v != "" {
				options = append(options, v)
			}
		}
		if len(options) < 2 {
			return nil, domain.NewCSVRowError(rowNum, fmt.Sprintf("Row %d: At least 2 options are required", rowNum))
		}

		answer := cell(row, l.answer)
		if isDigits(answer) {
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(options) {
				return nil, domain.NewCSVRowError(rowNum, fmt.Sprintf("Row %d: Answer index %s is out of range", rowNum, answer))
			}
			answer = options[n-1]
		}

		if !containsOption(options, answer) {
			matched := false
			for _, opt := range options {
				if strings.EqualFold(opt, answer) {
					answer = opt
					matched = true
					break
				}
			}
			if !matched {
				return nil, domain.NewCSVRowError(rowNum, fmt.Sprintf("Row %d: Answer '%s' is not in the options list", rowNum, answer))
			}
		}

		questions = append(questions, domain.Question{
			Text:    cell(row, l.question),
			Options: options,
			Answer:  answer,
		})
	}
	return questions, nil
}

// cell reads a column from a row, treating short rows as padded with
// empty cells.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func containsOption(options []string, v string) bool {
	for _, opt := range options {
		if opt == v {
			return true
		}
	}
	return false
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

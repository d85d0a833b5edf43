package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/teamform/teamform/internal/submission"
)

// Schema lists the expected column kinds in order.
var Schema = []string{"number", "datetime", "email", "text1", "text2", "text3", "text4"}

var numberRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

var specialNumbers = map[string]bool{
	"inf": true, "infinity": true, "nan": true, "snan": true,
}

// RowError locates one validation failure.
type RowError struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// Report is the outcome of Validate.
type Report struct {
	OK            bool       `json:"ok"`
	Schema        []string   `json:"schema"`
	RowsTotal     int        `json:"rows_total"`
	RowsValid     int        `json:"rows_valid"`
	RowsInvalid   int        `json:"rows_invalid"`
	SkippedHeader bool       `json:"skipped_header"`
	Errors        []RowError `json:"errors"`
}

type cellCheck struct {
	field   string
	message string
	valid   func(string) bool
}

var cellChecks = []cellCheck{
	{field: "number", message: "invalid number", valid: IsNumber},
	{field: "datetime", message: "expected format " + submission.TimestampLayout, valid: IsDatetime},
	{field: "email", message: "invalid email address", valid: IsEmail},
}

// Validate checks tab-separated text against Schema. A first row whose first
// cell is not a number is treated as a header and skipped. Each row reports at
// most one error, for its first failing cell.
func Validate(text string) Report {
	rep := Report{
		Schema: Schema,
		Errors: []RowError{},
	}

	r := newReader(text)
	first := true
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 1
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			rep.Errors = append(rep.Errors, RowError{
				Line: line, Column: 1, Field: "file", Message: fmt.Sprintf("unreadable row: %v", err),
			})
			rep.RowsTotal++
			first = false
			break
		}

		if first {
			first = false
			if !IsNumber(rec[0]) {
				rep.SkippedHeader = true
				continue
			}
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}

		rep.RowsTotal++
		line, _ := r.FieldPos(0)
		if rowErr, ok := checkRow(rec, line); !ok {
			rep.Errors = append(rep.Errors, rowErr)
			continue
		}
		rep.RowsValid++
	}

	if first {
		rep.Errors = append(rep.Errors, RowError{Line: 1, Column: 1, Field: "file", Message: "file is empty"})
		return rep
	}

	rep.RowsInvalid = rep.RowsTotal - rep.RowsValid
	rep.OK = rep.RowsInvalid == 0 && len(rep.Errors) == 0
	return rep
}

func checkRow(rec []string, line int) (RowError, bool) {
	for i, check := range cellChecks {
		if i >= len(rec) {
			return RowError{Line: line, Column: i + 1, Field: check.field, Message: "missing value"}, false
		}
		if !check.valid(strings.TrimSpace(rec[i])) {
			return RowError{Line: line, Column: i + 1, Field: check.field, Message: check.message, Value: rec[i]}, false
		}
	}
	return RowError{}, true
}

// IsNumber reports whether s is a decimal number, surrounding spaces allowed.
func IsNumber(s string) bool {
	s = strings.TrimSpace(s)
	if numberRegex.MatchString(s) {
		return true
	}
	return specialNumbers[strings.ToLower(strings.TrimLeft(s, "+-"))]
}

// IsDatetime reports whether s matches submission.TimestampLayout.
func IsDatetime(s string) bool {
	_, err := time.Parse(submission.TimestampLayout, s)
	return err == nil
}

// IsEmail reports whether s is a bare address with a dotted domain.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	domain := s[at+1:]
	return at > 0 && strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

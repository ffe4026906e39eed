package directory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/adapters/validator"
	"github.com/undeniable-app/undeniable/utils/constant"
)

// DroppedRow describes a row excluded from the directory.
type DroppedRow struct {
	Line    int    `json:"line" yaml:"line"`
	Company string `json:"company" yaml:"company"`
	Reason  string `json:"reason" yaml:"reason"`
}

// Report summarises one parse.
type Report struct {
	Source  string       `json:"source" yaml:"source"`
	Kept    int          `json:"kept" yaml:"kept"`
	Dropped []DroppedRow `json:"dropped" yaml:"dropped"`
}

var (
	errMissingHeader = errors.New("missing header row")
	errMissingName   = errors.New("header has no name column")
	errNoRows        = errors.New("no valid rows")
)

type columns struct {
	name, email, templateID int
}

func parseHeader(header []string) (columns, error) {
	cols := columns{name: -1, email: -1, templateID: -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		switch h {
		case "name":
			if cols.name < 0 {
				cols.name = i
			}
		case "email":
			if cols.email < 0 {
				cols.email = i
			}
		case "template_id", "templateid":
			if cols.templateID < 0 {
				cols.templateID = i
			}
		}
	}
	if cols.name < 0 {
		return cols, errMissingName
	}
	return cols, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// Parse reads a name,email table. Rows that are malformed or fail validation
// are dropped and logged at WARN; a missing header, an unreadable table or a
// table with no valid rows is an error.
func Parse(r io.Reader, logger *log.Log) (*Directory, *Report, error) {
	if logger == nil {
		logger = log.NewBasicLogger(false)
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, errMissingHeader
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}
	cols, err := parseHeader(header)
	if err != nil {
		return nil, nil, err
	}

	v := validator.NewValidator()
	dir := New()
	report := &Report{Dropped: []DroppedRow{}}

	lastBadLine := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) && parseErr.StartLine != lastBadLine {
			lastBadLine = parseErr.StartLine
			report.drop(logger, DroppedRow{Line: parseErr.StartLine, Reason: parseErr.Err.Error()})
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading rows: %w", err)
		}
		line, _ := reader.FieldPos(0)

		company := InsuranceCompany{
			Name:       field(record, cols.name),
			Email:      field(record, cols.email),
			TemplateID: field(record, cols.templateID),
		}
		if company.Email == "" {
			company.Email = constant.BlankEmail
		}

		reason := ""
		if errs := v.ValidateStruct(company); len(errs) > 0 {
			reason = joinErrors(errs)
		} else if !dir.add(company) {
			reason = "duplicate company name"
		}
		if reason != "" {
			report.drop(logger, DroppedRow{Line: line, Company: company.Name, Reason: reason})
		}
	}

	report.Kept = dir.Len()
	if dir.Len() == 0 {
		return nil, report, errNoRows
	}
	return dir, report, nil
}

func (r *Report) drop(logger *log.Log, row DroppedRow) {
	r.Dropped = append(r.Dropped, row)
	logger.Warn(constant.DirectoryRowDrop,
		log.Int("line", row.Line),
		log.String("company", row.Company),
		log.String("reason", row.Reason),
	)
}

func joinErrors(errs map[string]string) string {
	msgs := make([]string, 0, len(errs))
	for _, msg := range errs {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

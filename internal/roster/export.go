package roster

// export.go - parsing of league team CSV exports

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dugout-labs/rotodash/internal/fault"
)

// Section labels as they appear in the export's marker rows.
const (
	SectionHitting  = "hitting"
	SectionPitching = "pitching"
)

// Export holds the parsed contents of one team export file.
type Export struct {
	Hitters  []Hitter
	Pitchers []Pitcher
}

// ParseExportFile reads and parses a team export CSV from disk.
// A missing or unreadable file is an IOError; malformed stat cells are
// ValidationErrors and abort the parse.
func ParseExportFile(path, sourceTeam string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &fault.IOError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	exp, err := ParseExport(f, sourceTeam)
	if err != nil {
		return nil, err
	}
	return exp, nil
}

// ParseExport parses a team export from r. The format is a single CSV with
// two labelled sections: a marker row whose second cell is "Hitting" or
// "Pitching", followed by a header row, followed by data rows. Blank rows
// are skipped anywhere.
func ParseExport(r io.Reader, sourceTeam string) (*Export, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	exp := &Export{}
	var section string
	var headers []string
	rowInSection := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &fault.ValidationError{Section: section, Reason: "malformed csv: " + err.Error()}
		}

		if isBlankRow(record) {
			continue
		}

		if label := sectionLabel(record); label != "" {
			section = label
			headers = nil
			rowInSection = 0
			continue
		}

		if section == "" {
			// Preamble before the first section marker is ignored.
			continue
		}

		if headers == nil {
			headers = make([]string, len(record))
			for i, h := range record {
				headers[i] = strings.TrimSpace(h)
			}
			continue
		}

		rowInSection++
		fields := recordFields(headers, record)

		switch section {
		case SectionHitting:
			h, err := hitterFromFields(sourceTeam, rowInSection, fields)
			if err != nil {
				return nil, err
			}
			if err := ValidateHitter(rowInSection, h); err != nil {
				return nil, err
			}
			exp.Hitters = append(exp.Hitters, *h)
		case SectionPitching:
			p, err := pitcherFromFields(sourceTeam, rowInSection, fields)
			if err != nil {
				return nil, err
			}
			if err := ValidatePitcher(rowInSection, p); err != nil {
				return nil, err
			}
			exp.Pitchers = append(exp.Pitchers, *p)
		}
	}

	return exp, nil
}

func isBlankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// sectionLabel returns the lowercased section name if the row is a section
// marker (label in the second cell), or "" otherwise.
func sectionLabel(record []string) string {
	if len(record) < 2 {
		return ""
	}
	switch strings.TrimSpace(record[1]) {
	case "Hitting":
		return SectionHitting
	case "Pitching":
		return SectionPitching
	}
	return ""
}

func recordFields(headers, record []string) map[string]string {
	fields := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(record) {
			fields[h] = strings.TrimSpace(record[i])
		} else {
			fields[h] = ""
		}
	}
	return fields
}

func hitterFromFields(sourceTeam string, row int, fields map[string]string) (*Hitter, error) {
	c := newCellReader(SectionHitting, row, fields)
	h := &Hitter{
		SourceTeam: sourceTeam,
		ID:         fields["ID"],
		Pos:        fields["Pos"],
		Player:     fields["Player"],
		Team:       fields["Team"],
		Eligible:   fields["Eligible"],
		Status:     fields["Status"],
		Age:        c.intCell("Age"),
		Opponent:   fields["Opponent"],
		Salary:     c.intCell("Salary"),
		Contract:   fields["Contract"],
		AB:         c.intCell("AB"),
		H:          c.intCell("H"),
		R:          c.intCell("R"),
		HR:         c.intCell("HR"),
		RBI:        c.intCell("RBI"),
		SB:         c.intCell("SB"),
		AVG:        c.floatCell("AVG"),
		GP:         c.intCell("GP"),
	}
	return h, c.err
}

func pitcherFromFields(sourceTeam string, row int, fields map[string]string) (*Pitcher, error) {
	c := newCellReader(SectionPitching, row, fields)
	p := &Pitcher{
		SourceTeam: sourceTeam,
		ID:         fields["ID"],
		Pos:        fields["Pos"],
		Player:     fields["Player"],
		Team:       fields["Team"],
		Eligible:   fields["Eligible"],
		Status:     fields["Status"],
		Age:        c.intCell("Age"),
		Opponent:   fields["Opponent"],
		Salary:     c.intCell("Salary"),
		Contract:   fields["Contract"],
		IP:         c.floatCell("IP"),
		W:          c.intCell("W"),
		SV:         c.intCell("SV"),
		K:          c.intCell("K"),
		ERA:        c.floatCell("ERA"),
		WHIP:       c.floatCell("WHIP"),
		H:          c.intCell("H"),
		AB:         c.intCell("AB"),
		R:          c.intCell("R"),
		RBI:        c.intCell("RBI"),
		HR:         c.intCell("HR"),
		SB:         c.intCell("SB"),
		AVG:        c.floatCell("AVG"),
		GP:         c.intCell("GP"),
	}
	return p, c.err
}

// cellReader converts stat cells, remembering the first conversion failure.
// Empty cells are zero (the export leaves blanks for zero stats); anything
// else must parse cleanly or the whole load fails.
type cellReader struct {
	section string
	row     int
	fields  map[string]string
	err     error
}

func newCellReader(section string, row int, fields map[string]string) *cellReader {
	return &cellReader{section: section, row: row, fields: fields}
}

func (c *cellReader) intCell(column string) int {
	raw := cleanNumeric(c.fields[column])
	if raw == "" {
		return 0
	}
	// Exports sometimes render integer stats as "12.0".
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		c.fail(column, c.fields[column], "integer")
		return 0
	}
	return int(f)
}

func (c *cellReader) floatCell(column string) float64 {
	raw := cleanNumeric(c.fields[column])
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.fail(column, c.fields[column], "number")
		return 0
	}
	return f
}

func (c *cellReader) fail(column, value, want string) {
	if c.err != nil {
		return
	}
	c.err = &fault.ValidationError{
		Section: c.section,
		Row:     c.row,
		Column:  column,
		Reason:  "cannot parse " + strconv.Quote(value) + " as " + want,
	}
}

func cleanNumeric(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}

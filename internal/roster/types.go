// Package roster provides the player statistics domain model: parsing of
// league team exports, row validation, and roto auction pricing.
package roster

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dugout-labs/rotodash/internal/fault"
)

// Hitter is one player's batting line for a period, plus identity fields
// and the computed auction price.
type Hitter struct {
	SourceTeam string  `validate:"required"`
	ID         string
	Pos        string
	Player     string `validate:"required"`
	Team       string
	Eligible   string
	Status     string
	Age        int `validate:"gte=0"`
	Opponent   string
	Salary     int
	Contract   string
	AB         int     `validate:"gte=0"`
	H          int     `validate:"gte=0"`
	R          int     `validate:"gte=0"`
	HR         int     `validate:"gte=0"`
	RBI        int     `validate:"gte=0"`
	SB         int     `validate:"gte=0"`
	AVG        float64 `validate:"gte=0,lte=1"`
	GP         int     `validate:"gte=0"`
	Price      float64
}

// Pitcher is one player's pitching line. Pitcher exports also carry the
// batting columns (NL-style exports include them), so they are kept here too.
type Pitcher struct {
	SourceTeam string  `validate:"required"`
	ID         string
	Pos        string
	Player     string `validate:"required"`
	Team       string
	Eligible   string
	Status     string
	Age        int `validate:"gte=0"`
	Opponent   string
	Salary     int
	Contract   string
	IP         float64 `validate:"gte=0"`
	W          int     `validate:"gte=0"`
	SV         int     `validate:"gte=0"`
	K          int     `validate:"gte=0"`
	ERA        float64 `validate:"gte=0"`
	WHIP       float64 `validate:"gte=0"`
	H          int     `validate:"gte=0"`
	AB         int     `validate:"gte=0"`
	R          int     `validate:"gte=0"`
	RBI        int     `validate:"gte=0"`
	HR         int     `validate:"gte=0"`
	SB         int     `validate:"gte=0"`
	AVG        float64 `validate:"gte=0,lte=1"`
	GP         int     `validate:"gte=0"`
	Price      float64
}

var validate = validator.New()

// ValidateHitter checks struct-level constraints on a parsed hitter row.
func ValidateHitter(row int, h *Hitter) error {
	if err := validate.Struct(h); err != nil {
		return &fault.ValidationError{
			Section: SectionHitting,
			Row:     row,
			Column:  firstFailedField(err),
			Reason:  err.Error(),
		}
	}
	return nil
}

// ValidatePitcher checks struct-level constraints on a parsed pitcher row.
func ValidatePitcher(row int, p *Pitcher) error {
	if err := validate.Struct(p); err != nil {
		return &fault.ValidationError{
			Section: SectionPitching,
			Row:     row,
			Column:  firstFailedField(err),
			Reason:  err.Error(),
		}
	}
	return nil
}

func firstFailedField(err error) string {
	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return ""
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if ve, ok := err.(validator.ValidationErrors); ok { //nolint:errorlint // validator returns the slice type directly
		*target = ve
		return true
	}
	return false
}

// String implements fmt.Stringer for log output.
func (h *Hitter) String() string {
	return fmt.Sprintf("%s (%s, %s)", h.Player, h.Pos, h.Team)
}

func (p *Pitcher) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Player, p.Pos, p.Team)
}

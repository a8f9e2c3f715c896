package intake

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Submission is the intake form payload posted by the site.
type Submission struct {
	RobotCheck   string `json:"robotCheck"`
	Nom          string `json:"nom"`
	Email        string `json:"email"`
	Mission      string `json:"mission"`
	Message      string `json:"message"`
	Amount       Amount `json:"amount"`
	Recurrence   string `json:"recurrence"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
}

// Amount accepts either a JSON string or a JSON number, since the form posts
// its values as strings.
type Amount string

// UnmarshalJSON keeps the raw textual form; validation happens in Value.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

// Value parses the amount as a decimal number.
func (a Amount) Value() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(a)), 64)
}

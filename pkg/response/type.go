package response

import (
	"encoding/json"
	"time"
)

// ErrorBody is the JSON body written for every failed request.
type ErrorBody struct {
	Timestamp        DateTime `json:"timestamp"`
	Title            string   `json:"title"`
	HTTPStatusCode   int      `json:"httpStatusCode"`
	ReasonPhrase     string   `json:"reasonPhrase"`
	Details          string   `json:"details"`
	DeveloperMessage string   `json:"developerMessage"`
	Fields           string   `json:"fields,omitempty"`
	FieldsErrors     string   `json:"fieldsErrors,omitempty"`
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateTimeFormat, s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

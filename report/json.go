package report

import "encoding/json"

// JSON encodes reports as application/json. The zero value is ready to
// use; set Indent for human-facing output.
type JSON struct {
	Indent bool
}

var _ Encoder = JSON{}

func (JSON) ContentType() string { return "application/json" }

func (j JSON) Encode(r Report) ([]byte, error) {
	if j.Indent {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

func (JSON) Decode(b []byte) (Report, error) {
	var r Report
	err := json.Unmarshal(b, &r)
	return r, err
}

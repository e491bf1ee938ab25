package report

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack encodes reports as application/msgpack. The zero value is
// ready to use.
type Msgpack struct{}

var _ Encoder = Msgpack{}

func (Msgpack) ContentType() string { return "application/msgpack" }

func (Msgpack) Encode(r Report) ([]byte, error) {
	return msgpack.Marshal(r)
}

func (Msgpack) Decode(b []byte) (Report, error) {
	var r Report
	err := msgpack.Unmarshal(b, &r)
	return r, err
}

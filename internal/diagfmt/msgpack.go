package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack writes the same payload as JSON in msgpack encoding. Map keys
// follow the json tags so both formats share one schema.
func Msgpack(w io.Writer, entries []Entry, opts JSONOpts) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(BuildOutput(entries, opts))
}

// DecodeMsgpack reads a payload written by Msgpack.
func DecodeMsgpack(r io.Reader) (Output, error) {
	var out Output
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&out); err != nil {
		return Output{}, err
	}
	return out, nil
}

package histogram

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/matzehuels/wordstack/pkg/errors"
)

// MarshalJSON encodes f as a JSON object, writing words in list order.
func (f Frequencies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, wc := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(wc.Word)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(wc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of word counts, keeping document order.
//
// JSON null decodes to nil. Every other failure is an INVALID_INPUT error:
// a value that is not an object, a count that is not a number, a count with
// a fractional part or outside the int range, or a word that appears twice.
// Integral values written in float notation ("3.0", "1e2") are accepted.
// Negative counts decode fine and are rejected later by [Transform].
func (f *Frequencies) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode word counts")
	}
	if tok == nil {
		*f = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New(errors.ErrCodeInvalidInput, "word counts must be a JSON object")
	}

	out := Frequencies{}
	seen := make(map[string]struct{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode word counts")
		}
		word := keyTok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode count for %q", word)
		}
		n, ok := v.(json.Number)
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "count for %q is not a number", word)
		}
		count, err := parseCount(n)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid count for %q", word)
		}

		if _, dup := seen[word]; dup {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate word %q", word)
		}
		seen[word] = struct{}{}
		out = append(out, WordCount{Word: word, Count: count})
	}

	if _, err := dec.Token(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode word counts")
	}

	*f = out
	return nil
}

// parseCount converts a JSON number into an int, rejecting fractions,
// non-finite values and anything outside the int range.
func parseCount(n json.Number) (int, error) {
	s := n.String()
	if i, err := strconv.ParseInt(s, 10, strconv.IntSize); err == nil {
		return int(i), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s is not finite", s)
	}
	if v != math.Trunc(v) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s is not an integer", s)
	}
	if v < math.MinInt || v >= math.MaxInt {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s is out of range", s)
	}
	return int(v), nil
}

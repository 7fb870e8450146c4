package histogram

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/matzehuels/wordstack/pkg/errors"
)

func TestFrequenciesUnmarshalKeepsOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Frequencies
	}{
		{"cat first", `{"cat": 3, "dog": 5}`, Frequencies{{"cat", 3}, {"dog", 5}}},
		{"dog first", `{"dog": 5, "cat": 3}`, Frequencies{{"dog", 5}, {"cat", 3}}},
		{"empty object", `{}`, Frequencies{}},
		{"float notation", `{"a": 3.0, "b": 1e2}`, Frequencies{{"a", 3}, {"b", 100}}},
		{"negative allowed", `{"cat": -1}`, Frequencies{{"cat", -1}}},
		{"escaped key", `{"café": 2}`, Frequencies{{"café", 2}}},
		{"whitespace", " {\n\t\"x\" :\n 1 } ", Frequencies{{"x", 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Frequencies
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrequenciesUnmarshalNull(t *testing.T) {
	f := Frequencies{{"stale", 1}}
	if err := json.Unmarshal([]byte(`null`), &f); err != nil {
		t.Fatalf("Unmarshal(null) error: %v", err)
	}
	if f != nil {
		t.Errorf("Unmarshal(null) = %v, want nil", f)
	}
}

func TestFrequenciesUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"fraction", `{"cat": 1.5}`},
		{"string count", `{"cat": "x"}`},
		{"numeric string", `{"cat": "3"}`},
		{"bool count", `{"cat": true}`},
		{"null count", `{"cat": null}`},
		{"nested object", `{"cat": {"n": 1}}`},
		{"too large", `{"cat": 1e400}`},
		{"out of int range", `{"cat": 1e30}`},
		{"array", `[1, 2]`},
		{"number", `42`},
		{"duplicate", `{"cat": 1, "cat": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Frequencies
			err := json.Unmarshal([]byte(tt.input), &got)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Unmarshal(%s) error = %v, want INVALID_INPUT", tt.input, err)
			}
		})
	}
}

func TestFrequenciesMarshal(t *testing.T) {
	f := Frequencies{{"zebra", 1}, {"apple", 2}, {`quo"te`, 3}}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"zebra":1,"apple":2,"quo\"te":3}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back Frequencies
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(back, f) {
		t.Errorf("round trip = %v, want %v", back, f)
	}
}

func TestFrequenciesMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(Frequencies{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("Marshal() = %s, want {}", data)
	}
}

func TestFrequenciesInsideEnvelope(t *testing.T) {
	var envelope map[string]Frequencies
	body := `{"1": {"the": 4, "a": 2, "cat": 1}}`
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	want := Frequencies{{"the", 4}, {"a", 2}, {"cat", 1}}
	if !reflect.DeepEqual(envelope["1"], want) {
		t.Errorf("envelope[1] = %v, want %v", envelope["1"], want)
	}
}

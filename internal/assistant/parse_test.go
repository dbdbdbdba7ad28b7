package assistant

import (
	"context"
	"errors"
	"testing"
)

func TestStripJSONFence(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "\n  ```json\n{\"a\":1}\n```  \n", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := stripJSONFence(tc.in); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDecodeEstimate(t *testing.T) {
	t.Parallel()
	est, err := decodeEstimate("```json\n{\"name\":\"Banana\",\"calories\":105,\"protein\":1,\"carbs\":27,\"fat\":0}\n```")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if est.Name != "Banana" || est.Calories != 105 || est.CarbsG != 27 {
		t.Fatalf("unexpected estimate %+v", est)
	}
}

func TestDecodeEstimateRejectsBadPayloads(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "I think that is around 100 calories."},
		{"missing name", `{"calories":100}`},
		{"negative calories", `{"name":"Banana","calories":-5}`},
	}
	for _, tc := range cases {
		_, err := decodeEstimate(tc.raw)
		if !errors.Is(err, ErrBadResponse) {
			t.Fatalf("%s: expected ErrBadResponse, got %v", tc.name, err)
		}
	}
}

func TestDecodeEstimates(t *testing.T) {
	t.Parallel()
	raw := `[{"name":"Rice","calories":200,"carbs":45},{"name":"Egg","calories":78,"protein":6,"fat":5}]`
	estimates, err := decodeEstimates(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(estimates) != 2 {
		t.Fatalf("expected 2 estimates, got %d", len(estimates))
	}
	if estimates[1].Name != "Egg" || estimates[1].FatG != 5 {
		t.Fatalf("unexpected second estimate %+v", estimates[1])
	}
}

func TestDecodeEstimatesEmptyAndNull(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"[]", "null"} {
		estimates, err := decodeEstimates(raw)
		if err != nil {
			t.Fatalf("%s: decode: %v", raw, err)
		}
		if estimates == nil || len(estimates) != 0 {
			t.Fatalf("%s: expected empty non-nil slice, got %#v", raw, estimates)
		}
	}
}

func TestDecodeEstimatesRejectsInvalidEntry(t *testing.T) {
	t.Parallel()
	_, err := decodeEstimates(`[{"name":"Rice","calories":200},{"calories":78}]`)
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Parallel()
	_, err := New(context.Background(), Config{Model: "gemini-2.5-flash"})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

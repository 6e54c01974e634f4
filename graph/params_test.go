package graph

import "testing"

func TestNormalizeParamsNil(t *testing.T) {
	got, err := normalizeParams(nil)
	if err != nil || got != nil {
		t.Errorf("normalizeParams(nil) = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestNormalizeParamsMapStringAny(t *testing.T) {
	got, err := normalizeParams(map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("normalizeParams() err = %v", err)
	}
	if len(got) != 1 || got[0].Key != "a" || got[0].Value != 1 {
		t.Errorf("normalizeParams() = %v, want [{a 1}]", got)
	}
}

func TestNormalizeParamsOrderedPairs(t *testing.T) {
	in := []Param{{Key: "x", Value: 1}, {Key: "y", Value: 2}}
	got, err := normalizeParams(in)
	if err != nil {
		t.Fatalf("normalizeParams() err = %v", err)
	}
	if len(got) != 2 || got[0].Key != "x" || got[1].Key != "y" {
		t.Errorf("normalizeParams() = %v, want %v", got, in)
	}
}

func TestNormalizeParamsStruct(t *testing.T) {
	type record struct {
		Name string
		Age  int
		priv string //nolint:unused
	}
	got, err := normalizeParams(record{Name: "ada", Age: 36})
	if err != nil {
		t.Fatalf("normalizeParams() err = %v", err)
	}
	found := map[string]any{}
	for _, p := range got {
		found[p.Key.(string)] = p.Value
	}
	if found["Name"] != "ada" || found["Age"] != 36 {
		t.Errorf("normalizeParams() = %v, want Name=ada Age=36", found)
	}
	if _, ok := found["priv"]; ok {
		t.Error("normalizeParams() leaked an unexported field")
	}
}

func TestNormalizeParamsRejectsMalformedInput(t *testing.T) {
	_, err := normalizeParams(42)
	if err != ErrMalformedParams {
		t.Errorf("normalizeParams(42) err = %v, want ErrMalformedParams", err)
	}
}

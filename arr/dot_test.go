package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-fluent/arr"
)

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
			"nickname": nil,
		},
		"score": 42,
	}
}

func TestGet(t *testing.T) {
	m := makeNested()
	if v := arr.Get(m, "user.name"); v != "Alice" {
		t.Fatalf("Get user.name = %v; want Alice", v)
	}
	if v := arr.Get(m, "user.address.city"); v != "London" {
		t.Fatalf("Get city = %v; want London", v)
	}
	if v := arr.Get(m, "score"); v != 42 {
		t.Fatalf("Get score = %v; want 42", v)
	}
}

func TestGetDefault(t *testing.T) {
	m := makeNested()
	if v := arr.Get(m, "user.missing", "fallback"); v != "fallback" {
		t.Fatalf("Get default = %v; want fallback", v)
	}
	if v := arr.Get(m, "score.deeper"); v != nil {
		t.Fatalf("Get through a scalar = %v; want nil", v)
	}
}

func TestLookupDistinguishesNil(t *testing.T) {
	m := makeNested()
	v, ok := arr.Lookup(m, "user.nickname")
	if !ok || v != nil {
		t.Fatalf("Lookup nickname = %v, %v; want nil, true", v, ok)
	}
	if _, ok := arr.Lookup(m, "user.age"); ok {
		t.Fatal("Lookup of a missing key should report false")
	}
}

func TestHas(t *testing.T) {
	m := makeNested()
	if !arr.Has(m, "user.address.country") {
		t.Fatal("Has should find user.address.country")
	}
	if arr.Has(m, "user.address.postcode") {
		t.Fatal("Has should not find user.address.postcode")
	}
	if arr.Has(m, "") {
		t.Fatal("Has should not find the empty key")
	}
}

package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestHandleLookupAreaCodeByCode(t *testing.T) {
	h := NewNumberHandler(nil) // static lookup, no client needed

	res, err := h.handleLookupAreaCode(context.Background(), callRequest("lookup_area_code", map[string]any{
		"area_code": "919",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if !strings.Contains(resultText(t, res), "North Carolina") {
		t.Fatalf("unexpected payload: %s", resultText(t, res))
	}
}

func TestHandleLookupAreaCodeByPhoneNumber(t *testing.T) {
	h := NewNumberHandler(nil)

	res, err := h.handleLookupAreaCode(context.Background(), callRequest("lookup_area_code", map[string]any{
		"phone_number": "+12125551234",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, `"areaCode": "212"`) || !strings.Contains(text, "New York") {
		t.Fatalf("unexpected payload: %s", text)
	}
}

func TestHandleLookupAreaCodeByState(t *testing.T) {
	h := NewNumberHandler(nil)

	res, err := h.handleLookupAreaCode(context.Background(), callRequest("lookup_area_code", map[string]any{
		"state": "wy",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "307") || !strings.Contains(text, "Wyoming") {
		t.Fatalf("unexpected payload: %s", text)
	}
}

func TestHandleLookupAreaCodeNoArguments(t *testing.T) {
	h := NewNumberHandler(nil)

	res, err := h.handleLookupAreaCode(context.Background(), callRequest("lookup_area_code", map[string]any{}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error without arguments")
	}
}

func TestHandleListPhoneNumbers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/telephony/config/numbers") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"items":[{"phoneNumber":"+19195551234"},{"phoneNumber":"+19195555678"}]}`))
	})
	h := NewNumberHandler(c)

	res, err := h.handleListPhoneNumbers(context.Background(), callRequest("list_phone_numbers", map[string]any{
		"max_results": float64(10),
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if !strings.Contains(resultText(t, res), `"count": 2`) {
		t.Fatalf("unexpected payload: %s", resultText(t, res))
	}
}

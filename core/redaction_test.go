package core

import "testing"

func TestRedactSensitiveMapPreservesTraceabilityMetadata(t *testing.T) {
	redacted := RedactSensitiveMap(map[string]any{
		"trace_id":      "trace_1",
		"operation_id":  "op_1",
		"item_id":       "abc123",
		"access_token":  "secret-token",
		"authorization": "Bearer secret-token",
		"credential":    "tok",
		"nested":        map[string]any{"bearer": "x", "trace_id": "trace_nested"},
		"events":        []any{map[string]any{"api_key": "key_1"}, map[string]any{"file_path": "a.jpg"}},
	})

	if redacted["trace_id"] != "trace_1" || redacted["operation_id"] != "op_1" || redacted["item_id"] != "abc123" {
		t.Fatalf("expected traceability keys to remain visible, got %#v", redacted)
	}
	for _, key := range []string{"access_token", "authorization", "credential"} {
		if redacted[key] != RedactedValue {
			t.Fatalf("expected %s to be redacted, got %#v", key, redacted[key])
		}
	}
	nested, ok := redacted["nested"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested redacted map")
	}
	if nested["bearer"] != RedactedValue || nested["trace_id"] != "trace_nested" {
		t.Fatalf("unexpected nested redaction %#v", nested)
	}
	events := redacted["events"].([]any)
	if events[0].(map[string]any)["api_key"] != RedactedValue || events[1].(map[string]any)["file_path"] != "a.jpg" {
		t.Fatalf("unexpected slice redaction %#v", events)
	}
	if out := RedactSensitiveMap(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty map for nil input")
	}
}

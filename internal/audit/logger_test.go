package audit

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecordMasksSensitiveParameters(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewLogger(zap.New(core))

	l.Record(Operation{
		Type:    "customer.delete",
		Command: "provctl delete",
		Parameters: map[string]string{
			"customer_id": "42",
			"token":       "abcdef123456",
		},
		Outcome:  "success",
		Duration: 120 * time.Millisecond,
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["operation"] != "customer.delete" {
		t.Errorf("operation = %v", ctx["operation"])
	}
	params, ok := ctx["parameters"].(map[string]string)
	if !ok {
		t.Fatalf("parameters not captured: %T", ctx["parameters"])
	}
	if params["customer_id"] != "42" {
		t.Errorf("customer_id = %q, want unmasked", params["customer_id"])
	}
	if params["token"] != "***3456" {
		t.Errorf("token = %q, want masked with trailing characters", params["token"])
	}
}

func TestRecordShortSecretFullyMasked(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewLogger(zap.New(core))

	l.Record(Operation{
		Type:       "config.set",
		Command:    "provctl config set",
		Parameters: map[string]string{"token": "abc"},
		Outcome:    "success",
	})

	ctx := logs.All()[0].ContextMap()
	params := ctx["parameters"].(map[string]string)
	if params["token"] != "***" {
		t.Errorf("token = %q, want fully masked", params["token"])
	}
}

func TestNilLoggerDoesNotPanic(t *testing.T) {
	l := NewLogger(nil)
	l.Record(Operation{Type: "customer.create", Command: "provctl create", Outcome: "failure"})
}

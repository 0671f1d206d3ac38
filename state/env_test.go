package state

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.Uptime() < 0 {
		t.Error("Uptime() is negative")
	}
}

func TestEnvFromContext_MissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EnvFromContext() on bare context did not panic")
		}
	}()
	EnvFromContext(context.Background())
}

package state

import (
	"context"
	"testing"
	"time"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}

	// same env on repeated access
	if EnvFromContext(ctx) != env {
		t.Error("EnvFromContext() must return the same instance")
	}

	if env.Uptime() < 0 || env.Uptime() > time.Minute {
		t.Errorf("unexpected uptime %v", env.Uptime())
	}
}

func TestEnvFromContextPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for context without env")
		}
	}()
	EnvFromContext(context.Background())
}

func TestStdLogRedirection(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	// must not panic with no logger attached
	env.RedirectStdLog()
	env.RestoreStdLog()
}

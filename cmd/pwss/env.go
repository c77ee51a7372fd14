package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/npillmayer/pwss/internal/config"
)

type envKey struct{}

// localEnv keeps everything the program needs in a single place.
type localEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	start time.Time
}

func envFromContext(ctx context.Context) *localEnv {
	if env, ok := ctx.Value(envKey{}).(*localEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &localEnv{Log: zap.NewNop(), start: time.Now()})
}

func (e *localEnv) uptime() time.Duration {
	return time.Since(e.start)
}

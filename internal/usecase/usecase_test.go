package usecase

import (
	"io"
	"testing"

	"blogpress/internal/repo/persistent"
	"blogpress/internal/testutil"
	"blogpress/pkg/logger"
	"blogpress/pkg/session"
)

func newTestLogger() *logger.Logger {
	return logger.NewWithWriters(io.Discard, io.Discard)
}

type fixture struct {
	auth  AuthUseCase
	posts PostUseCase
}

func newFixture(t *testing.T, codec session.Codec) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := newTestLogger()
	return &fixture{
		auth:  NewAuthUseCase(persistent.NewAdminRepository(db), codec, log),
		posts: NewPostUseCase(persistent.NewPostRepository(db), log),
	}
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"notekeep/store"
)

// GuestUser is the audit attribution for actions without an authenticated
// caller.
const GuestUser = "guest"

// audit appends an entry to the audit trail. Failures are logged and
// swallowed; the audit log never fails the calling operation.
func audit(ctx context.Context, st store.Store, log zerolog.Logger, action, user string) {
	if user == "" {
		user = GuestUser
	}
	if err := st.AppendLog(ctx, action, user); err != nil {
		log.Warn().Err(err).Str("action", action).Str("user", user).Msg("audit log append failed")
	}
}

package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/artifyhq/artify-server/internal/domain/errs"
)

// Login verifies a password credential and issues a fresh token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, cmd LoginCommand) (Result, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return Result{}, fmt.Errorf("%w: email and password are required", errs.ErrValidation)
	}

	account, err := s.users.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, errs.ErrInvalidCredentials
		}
		return Result{}, err
	}

	if err = s.hasher.Compare(account.PasswordHash, cmd.Password); err != nil {
		return Result{}, err
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", account.ID.Hex()),
	)

	return Result{User: account, Token: token}, nil
}

package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/artifyhq/artify-server/internal/domain/errs"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
)

// Register creates a new password account and issues a credential for it.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (Result, error) {
	if cmd.Name == "" || cmd.Email == "" || cmd.Password == "" {
		return Result{}, fmt.Errorf("%w: name, email, and password are required", errs.ErrValidation)
	}
	if len(cmd.Password) < MinPasswordLength {
		return Result{}, fmt.Errorf("%w: password must be at least %d characters", errs.ErrValidation, MinPasswordLength)
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return Result{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := userdomain.New(cmd.Name, cmd.Email, hash, cmd.PhotoURL)
	if err != nil {
		return Result{}, err
	}

	// The unique email index catches concurrent registrations for us.
	if err = s.users.Insert(ctx, account); err != nil {
		return Result{}, err
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", account.ID.Hex()),
		slog.String("email", account.Email),
	)

	return Result{User: account, Token: token}, nil
}

package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/artifyhq/artify-server/internal/domain/errs"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
)

// mockPhotoURL is the avatar assigned to mock social accounts.
const mockPhotoURL = "https://i.ibb.co.com/WNjkBs1C/Myprof.png"

// SocialLogin simulates an OAuth flow: it fabricates a provider account with
// a timestamp-unique email and logs it in. The synthesized email makes every
// call create a fresh account in practice; an exact email collision reuses
// the existing one.
func (s *Service) SocialLogin(ctx context.Context, cmd SocialLoginCommand) (Result, error) {
	provider := strings.ToLower(strings.TrimSpace(cmd.Provider))
	if provider == "" {
		return Result{}, fmt.Errorf("%w: provider is required", errs.ErrValidation)
	}

	email := fmt.Sprintf("%s_user_%d@artify.com", provider, time.Now().UnixMilli())

	account, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		// Existing account, log it in.

	case errors.Is(err, errs.ErrNotFound):
		account, err = userdomain.New(providerDisplayName(provider), email, "", mockPhotoURL)
		if err != nil {
			return Result{}, err
		}
		account.SetProviderID(provider, fmt.Sprintf("mock_%s_%s", provider, uuid.NewString()))

		if err = s.users.Insert(ctx, account); err != nil {
			return Result{}, err
		}

		s.logger.InfoContext(ctx, "mock social account created",
			slog.String("user_id", account.ID.Hex()),
			slog.String("provider", provider),
		)

	default:
		return Result{}, err
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return Result{User: account, Token: token}, nil
}

// providerDisplayName turns "google" into "Google User".
func providerDisplayName(provider string) string {
	runes := []rune(provider)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + " User"
}

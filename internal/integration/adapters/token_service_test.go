package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeTokenRepo struct {
	saved            []string
	invalidated      []string
	invalidatedUsers []uuid.UUID
}

func (f *fakeTokenRepo) SaveRefreshToken(_ context.Context, token string, _ uuid.UUID, _ time.Time) error {
	f.saved = append(f.saved, token)
	return nil
}

func (f *fakeTokenRepo) IsRefreshTokenValid(context.Context, string) (bool, error) {
	return true, nil
}

func (f *fakeTokenRepo) InvalidateRefreshToken(_ context.Context, token string) error {
	f.invalidated = append(f.invalidated, token)
	return nil
}

func (f *fakeTokenRepo) InvalidateAllUserRefreshTokens(_ context.Context, userID uuid.UUID) error {
	f.invalidatedUsers = append(f.invalidatedUsers, userID)
	return nil
}

func TestTokenService(t *testing.T) {
	userID := uuid.New()

	t.Run("tokens minted back to back are distinct", func(t *testing.T) {
		service := NewTokenService("secret", &fakeTokenRepo{})

		first, err := service.GenerateTokenPair(context.Background(), userID, "a@example.com", false)
		if err != nil {
			t.Fatalf("GenerateTokenPair returned error: %v", err)
		}
		second, err := service.GenerateTokenPair(context.Background(), userID, "a@example.com", false)
		if err != nil {
			t.Fatalf("GenerateTokenPair returned error: %v", err)
		}

		if first.AccessToken == first.RefreshToken {
			t.Error("access and refresh token are identical")
		}
		if first.RefreshToken == second.RefreshToken {
			t.Error("refresh tokens from consecutive calls are identical")
		}
		if first.AccessToken == second.AccessToken {
			t.Error("access tokens from consecutive calls are identical")
		}
	})

	t.Run("refresh tokens are persisted on generation", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		service := NewTokenService("secret", repo)

		pair, err := service.GenerateTokenPair(context.Background(), userID, "a@example.com", false)
		if err != nil {
			t.Fatalf("GenerateTokenPair returned error: %v", err)
		}
		if len(repo.saved) != 1 || repo.saved[0] != pair.RefreshToken {
			t.Errorf("saved tokens = %v, want the generated refresh token", repo.saved)
		}
	})

	t.Run("access token validation round trip", func(t *testing.T) {
		service := NewTokenService("secret", &fakeTokenRepo{})

		pair, err := service.GenerateTokenPair(context.Background(), userID, "a@example.com", false)
		if err != nil {
			t.Fatalf("GenerateTokenPair returned error: %v", err)
		}

		claims, err := service.ValidateAccessToken(context.Background(), pair.AccessToken)
		if err != nil {
			t.Fatalf("ValidateAccessToken returned error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("UserID = %s, want %s", claims.UserID, userID)
		}
		if claims.Email != "a@example.com" {
			t.Errorf("Email = %s, want a@example.com", claims.Email)
		}

		if _, err := service.ValidateAccessToken(context.Background(), pair.RefreshToken); err == nil {
			t.Error("expected a refresh token to be rejected as an access token")
		}
	})

	t.Run("invalidating all tokens delegates to the repository", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		service := NewTokenService("secret", repo)

		if err := service.InvalidateAllUserTokens(context.Background(), userID); err != nil {
			t.Fatalf("InvalidateAllUserTokens returned error: %v", err)
		}
		if len(repo.invalidatedUsers) != 1 || repo.invalidatedUsers[0] != userID {
			t.Errorf("invalidated users = %v, want [%s]", repo.invalidatedUsers, userID)
		}
	})
}

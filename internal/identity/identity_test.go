package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/models"
)

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("any-key"))
	require.NoError(t, err)
	return s
}

func TestResolve(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	future := jwt.NewNumericDate(now.Add(time.Hour))

	tests := []struct {
		name    string
		cfg     func(t *testing.T) config.Account
		want    models.Account
		wantErr error
	}{
		{
			name: "plain id",
			cfg: func(*testing.T) config.Account {
				return config.Account{ID: " u1 ", Email: "a@b.c", Name: "Ann"}
			},
			want: models.Account{ID: "u1", Email: "a@b.c", Name: "Ann"},
		},
		{
			name:    "nothing configured",
			cfg:     func(*testing.T) config.Account { return config.Account{} },
			wantErr: ErrNoIdentity,
		},
		{
			name: "token claims win",
			cfg: func(t *testing.T) config.Account {
				return config.Account{
					ID:    "ignored",
					Email: "old@b.c",
					IDToken: signToken(t, Claims{
						UserID:           "firebase-uid",
						Email:            "new@b.c",
						RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-1", ExpiresAt: future},
					}),
				}
			},
			want: models.Account{ID: "firebase-uid", Email: "new@b.c"},
		},
		{
			name: "subject used without user_id, name falls back to config",
			cfg: func(t *testing.T) config.Account {
				return config.Account{
					Name:    "Configured",
					IDToken: signToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-1"}}),
				}
			},
			want: models.Account{ID: "sub-1", Name: "Configured"},
		},
		{
			name: "expired token",
			cfg: func(t *testing.T) config.Account {
				return config.Account{IDToken: signToken(t, Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-1", ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))},
				})}
			},
			wantErr: ErrTokenExpired,
		},
		{
			name: "token without subject",
			cfg: func(t *testing.T) config.Account {
				return config.Account{IDToken: signToken(t, Claims{Email: "a@b.c"})}
			},
			wantErr: ErrNoSubject,
		},
		{
			name:    "garbage token",
			cfg:     func(*testing.T) config.Account { return config.Account{ID: "u1", IDToken: "not-a-jwt"} },
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve(tt.cfg(t), now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_UsesWallClock(t *testing.T) {
	token := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})

	got, err := Resolve(config.Account{IDToken: token})
	require.NoError(t, err)
	assert.Equal(t, "sub-1", got.ID)
}

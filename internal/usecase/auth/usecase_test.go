package auth

import (
	"context"
	"testing"
	"time"

	"lppm-backend/internal/adapter/repository/mysql"
	"lppm-backend/internal/domain/fault"
	masterDomain "lppm-backend/internal/domain/master"
	"lppm-backend/internal/testutil/fixture"
	"lppm-backend/pkg/id"
	"lppm-backend/pkg/token"
)

var testSecret = []byte("unit-test-secret")

func setup(t *testing.T) *Usecase {
	t.Helper()
	g := fixture.NewDB(t)

	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := []masterDomain.User{
		{ID: id.NewID32(), Username: "budi", PasswordHash: hash, Role: masterDomain.RoleDosen, Status: "AKTIF"},
		{ID: id.NewID32(), Username: "nonaktif", PasswordHash: hash, Role: masterDomain.RoleDosen, Status: "NONAKTIF"},
	}
	for i := range users {
		if err := g.Create(&users[i]).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	return NewUsecase(mysql.NewUserRepository(g), testSecret, time.Hour)
}

func TestLogin(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	t.Run("issues a parseable token", func(t *testing.T) {
		out, err := uc.Login(ctx, LoginInput{Username: "budi", Password: "rahasia123"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if out.User == nil || out.User.Username != "budi" {
			t.Fatalf("user = %+v", out.User)
		}
		claims, err := token.Parse(testSecret, out.Token)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if claims.UserID != out.User.ID || claims.Role != masterDomain.RoleDosen {
			t.Fatalf("claims = %+v", claims)
		}
	})

	t.Run("wrong password and unknown user share one message", func(t *testing.T) {
		_, errWrong := uc.Login(ctx, LoginInput{Username: "budi", Password: "salah"})
		_, errUnknown := uc.Login(ctx, LoginInput{Username: "tidakada", Password: "rahasia123"})
		for _, err := range []error{errWrong, errUnknown} {
			if fault.KindOf(err) != fault.KindUnauthorized {
				t.Fatalf("want Unauthorized, got %v", err)
			}
		}
		if errWrong.Error() != errUnknown.Error() {
			t.Fatalf("messages differ: %q vs %q", errWrong, errUnknown)
		}
	})

	t.Run("inactive account is forbidden", func(t *testing.T) {
		_, err := uc.Login(ctx, LoginInput{Username: "nonaktif", Password: "rahasia123"})
		if fault.KindOf(err) != fault.KindForbidden {
			t.Fatalf("want Forbidden, got %v", err)
		}
	})

	t.Run("empty credentials are rejected", func(t *testing.T) {
		_, err := uc.Login(ctx, LoginInput{Username: "budi"})
		if fault.KindOf(err) != fault.KindValidation {
			t.Fatalf("want Validation, got %v", err)
		}
	})
}

func TestParseRejectsForeignSignature(t *testing.T) {
	tok, err := token.Generate([]byte("other-secret"), "u1", masterDomain.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := token.Parse(testSecret, tok); err == nil {
		t.Fatalf("token signed with another secret must not parse")
	}
}

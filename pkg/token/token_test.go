package token

import (
	"strconv"
	"testing"
	"time"

	"yambo_backend/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 42, Login: "player"}

	tokenStr, err := GenerateAccessToken(user, secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	claims, err := VerifyToken(tokenStr, secret)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.ID != strconv.Itoa(user.ID) {
		t.Fatalf("claims.ID = %q, want %q", claims.ID, strconv.Itoa(user.ID))
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("right"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	if _, err := VerifyToken(tokenStr, []byte("wrong")); err == nil {
		t.Fatal("VerifyToken accepted a token signed with another secret")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret"), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	if _, err := VerifyToken(tokenStr, []byte("secret")); err == nil {
		t.Fatal("VerifyToken accepted an expired token")
	}
}

func TestRefreshTokenHashVerify(t *testing.T) {
	tok, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}
	hash := HashRefreshToken(tok)
	if !VerifyRefreshToken(tok, hash) {
		t.Fatal("refresh token does not verify against its own hash")
	}
	if VerifyRefreshToken("other", hash) {
		t.Fatal("wrong refresh token verified")
	}
}

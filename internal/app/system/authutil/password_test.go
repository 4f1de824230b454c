package authutil

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash should not equal the password")
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("CheckPassword() should accept the original password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("CheckPassword() should reject a wrong password")
	}
}

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		pw, err := GeneratePassword()
		if err != nil {
			t.Fatalf("GeneratePassword() error = %v", err)
		}
		if len(pw) != GeneratedPasswordLength {
			t.Errorf("len = %d, want %d", len(pw), GeneratedPasswordLength)
		}
		if seen[pw] {
			t.Error("generated password repeated")
		}
		seen[pw] = true
	}
}

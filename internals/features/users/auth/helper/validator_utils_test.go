package helpers

import "testing"

func TestValidatePassword(t *testing.T) {
	for pw, ok := range map[string]bool{
		"short1":       false,
		"lettersonly":  false,
		"1234567890":   false,
		"hostel2024":   true,
		"Warden#Gate9": true,
	} {
		if err := ValidatePassword(pw); (err == nil) != ok {
			t.Errorf("%q: err = %v", pw, err)
		}
	}
}

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("hostel2024")
	if err != nil {
		t.Fatal(err)
	}
	if CheckPasswordHash(hash, "hostel2024") != nil {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash(hash, "hostel2025") == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestGeneratePassword(t *testing.T) {
	a, err := GeneratePassword()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := GeneratePassword()
	if a == b {
		t.Fatal("passwords repeat")
	}
	if err := ValidatePassword(a); err != nil {
		t.Fatalf("generated %q: %v", a, err)
	}
}

func TestValidateLoginInput(t *testing.T) {
	if ValidateLoginInput(" ", "x") == nil || ValidateLoginInput("E1", "") == nil {
		t.Fatal("missing fields accepted")
	}
	if err := ValidateLoginInput("E1", "x"); err != nil {
		t.Fatal(err)
	}
}

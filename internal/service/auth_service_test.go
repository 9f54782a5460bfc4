package service

import (
	"testing"

	"quizhub_backend/internal/util"
)

func validInput() RegisterInput {
	return RegisterInput{
		Username:  "grace_h",
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Birthday:  "1906-12-09",
		Password:  "Compile1!",
	}
}

func TestValidateRegistrationAccepts(t *testing.T) {
	if err := ValidateRegistration(validInput()); err != nil {
		t.Fatalf("expected valid input to pass: %v", err)
	}
}

func TestValidateRegistrationUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"too short", "ab", true},
		{"too long", "abcdefghijklmnopqrstuvwxyz", true},
		{"bad chars", "gr@ce", true},
		{"spaces", "grace h", true},
		{"hyphen and underscore ok", "grace_h-1", false},
		{"min length", "abc", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Username = tc.username
			err := ValidateRegistration(in)
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRegistrationLegalNames(t *testing.T) {
	in := validInput()
	in.FirstName = "Al"
	if err := ValidateRegistration(in); err == nil {
		t.Fatal("expected short first name to be rejected")
	}

	in = validInput()
	in.LastName = "O'Brien"
	if err := ValidateRegistration(in); err == nil {
		t.Fatal("expected non-letter characters in name to be rejected")
	}

	in = validInput()
	in.FirstName = "Łukasz"
	if err := ValidateRegistration(in); err != nil {
		t.Fatalf("unicode letters must be accepted: %v", err)
	}
}

func TestValidateRegistrationBirthday(t *testing.T) {
	in := validInput()
	in.Birthday = "09-12-1906"
	if err := ValidateRegistration(in); err == nil {
		t.Fatal("expected non-ISO date to be rejected")
	}

	in.Birthday = "not-a-date"
	if err := ValidateRegistration(in); err == nil {
		t.Fatal("expected garbage date to be rejected")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Compile1!", false},
		{"too short", "Ab1!", true},
		{"no lowercase", "COMPILE1!", true},
		{"no uppercase", "compile1!", true},
		{"no digit", "Compiler!", true},
		{"no special", "Compile12", true},
		{"unsupported char", "Compile1! ", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !util.IsValidation(err) {
					t.Fatalf("expected a validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

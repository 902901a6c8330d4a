package security

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordWithCost(t *testing.T) {
	tests := []struct {
		name     string
		password string
		cost     int
		wantErr  bool
	}{
		{
			name:     "minimum cost",
			password: "password",
			cost:     bcrypt.MinCost,
			wantErr:  false,
		},
		{
			name:     "default cost",
			password: "password",
			cost:     10,
			wantErr:  false,
		},
		{
			name:     "high cost",
			password: "password",
			cost:     12,
			wantErr:  false,
		},
		{
			name:     "cost too low",
			password: "password",
			cost:     bcrypt.MinCost - 1,
			wantErr:  true,
		},
		{
			name:     "cost too high",
			password: "password",
			cost:     bcrypt.MaxCost + 1,
			wantErr:  true,
		},
		{
			name:     "very long password exceeds 72 bytes",
			password: strings.Repeat("a", 100),
			cost:     10,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPasswordWithCost(tt.password, tt.cost)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HashPasswordWithCost() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
				t.Errorf("HashPasswordWithCost() hash doesn't have bcrypt prefix: %s", hash)
			}
			actualCost, err := bcrypt.Cost([]byte(hash))
			if err != nil {
				t.Fatalf("failed to get cost from hash: %v", err)
			}
			if actualCost != tt.cost {
				t.Errorf("HashPasswordWithCost() cost = %d, want %d", actualCost, tt.cost)
			}
			if err := VerifyPassword(hash, tt.password); err != nil {
				t.Errorf("VerifyPassword() failed for generated hash: %v", err)
			}
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	testPassword := "correctPassword123"
	testHash, err := HashPasswordWithCost(testPassword, 10)
	if err != nil {
		t.Fatalf("failed to generate test hash: %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  bool
	}{
		{"correct password", testHash, testPassword, false},
		{"incorrect password", testHash, "wrongPassword", true},
		{"empty password", testHash, "", true},
		{"case sensitive password", testHash, "CORRECTPASSWORD123", true},
		{"invalid hash format", "not-a-valid-hash", testPassword, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.hash, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("VerifyPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package passwordcheck

import (
	"context"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng!Password", false},
		{"too short", "Ab1!", true},
		{"no uppercase", "weak!pass1", true},
		{"no lowercase", "WEAK!PASS1", true},
		{"no digit", "Weak!Password", true},
		{"no special char", "WeakPassword1", true},
	}

	for _, c := range cases {
		err := ValidatePassword(ctx, c.password)
		if c.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
		}
		if !c.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
		}
	}
}

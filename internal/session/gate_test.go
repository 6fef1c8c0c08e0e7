package session

import "testing"

func TestGateLogin(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		wantOK    bool
		wantError string
	}{
		{"valid credentials", "admin", "admin", true, ""},
		{"wrong password", "admin", "wrong", false, ErrMessage},
		{"unknown user", "root", "admin", false, ErrMessage},
		{"empty", "", "", false, ErrMessage},
		{"case sensitive", "Admin", "admin", false, ErrMessage},
		{"trailing space", "admin ", "admin", false, ErrMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Gate
			ok := g.Login(DefaultCredentials, tt.username, tt.password)
			if ok != tt.wantOK || g.Authenticated() != tt.wantOK {
				t.Errorf("Login() = %v, Authenticated() = %v, want %v", ok, g.Authenticated(), tt.wantOK)
			}
			if g.Error() != tt.wantError {
				t.Errorf("Error() = %q, want %q", g.Error(), tt.wantError)
			}
		})
	}
}

func TestGateSuccessClearsError(t *testing.T) {
	var g Gate
	g.Login(DefaultCredentials, "admin", "wrong")
	if g.Error() != ErrMessage {
		t.Fatalf("Error() = %q, want %q", g.Error(), ErrMessage)
	}

	g.Login(DefaultCredentials, "admin", "admin")
	if !g.Authenticated() || g.Error() != "" {
		t.Errorf("after valid login: Authenticated() = %v, Error() = %q", g.Authenticated(), g.Error())
	}
}

func TestGateFailedLoginKeepsPriorAuthentication(t *testing.T) {
	var g Gate
	g.Login(DefaultCredentials, "admin", "admin")

	g.Login(DefaultCredentials, "admin", "wrong")
	if !g.Authenticated() {
		t.Error("a failed login should not drop an existing admin session")
	}
	if g.Error() != ErrMessage {
		t.Errorf("Error() = %q, want %q", g.Error(), ErrMessage)
	}
}

func TestGateLogout(t *testing.T) {
	var g Gate
	g.Logout()
	if g.Authenticated() {
		t.Error("Logout() on a fresh gate should stay unauthenticated")
	}

	g.Login(DefaultCredentials, "admin", "admin")
	g.Logout()
	if g.Authenticated() {
		t.Error("Logout() should end the session")
	}
}

func TestGateCustomCredentials(t *testing.T) {
	creds := Credentials{Username: "owner", Password: "s3cret"}
	var g Gate

	if g.Login(creds, "admin", "admin") {
		t.Error("default pair should not match custom credentials")
	}
	if !g.Login(creds, "owner", "s3cret") {
		t.Error("custom pair should match")
	}
}

// Package session tracks who is signed in to the admin editor.
//
// The gate is a plain string comparison against one configured credential
// pair. It has no hashing, expiry or lockout and is not a security boundary.
package session

import "crypto/subtle"

// ErrMessage is shown for any failed login. It never says which half was wrong.
const ErrMessage = "Invalid credentials. Try admin/admin"

// Credentials is the single accepted username/password pair.
type Credentials struct {
	Username string
	Password string
}

// DefaultCredentials is the pair used when none is configured.
var DefaultCredentials = Credentials{Username: "admin", Password: "admin"}

func (c Credentials) match(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))
	return u&p == 1
}

// Gate is the authenticated flag plus the last login error.
// The zero value is unauthenticated with no error.
type Gate struct {
	authenticated bool
	err           string
}

// Login authenticates on an exact match and clears the error. On mismatch
// it records ErrMessage and leaves the authenticated flag as it was.
func (g *Gate) Login(creds Credentials, username, password string) bool {
	if creds.match(username, password) {
		g.authenticated = true
		g.err = ""
		return true
	}
	g.err = ErrMessage
	return false
}

// Logout always ends the admin session.
func (g *Gate) Logout() {
	g.authenticated = false
}

// Authenticated reports whether the last successful login is still in effect.
func (g *Gate) Authenticated() bool { return g.authenticated }

// Error returns the last login error, or "".
func (g *Gate) Error() string { return g.err }

package domain

import (
	"errors"
	"strings"
)

// NavLink is a static anchor in the site header.
type NavLink struct {
	Label string
	Href  string
}

// NavLinks returns the header navigation in display order.
func NavLinks() []NavLink {
	return []NavLink{
		{Label: "Home", Href: "#home"},
		{Label: "Work", Href: "#work"},
		{Label: "About", Href: "#about"},
		{Label: "Contact", Href: "#contact"},
	}
}

// ContactMessage is a submission of the public contact form.
// It is logged, never stored.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

var ErrIncompleteContact = errors.New("all contact fields are required")

// Validate requires every field to be present (non-blank).
func (m ContactMessage) Validate() error {
	for _, v := range []string{m.Name, m.Email, m.Subject, m.Message} {
		if strings.TrimSpace(v) == "" {
			return ErrIncompleteContact
		}
	}
	return nil
}

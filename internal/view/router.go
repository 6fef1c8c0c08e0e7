// Package view is the public/admin switch and the admin section selector.
package view

import (
	"errors"
	"fmt"
)

var ErrUnknownSection = errors.New("unknown section")

type Mode string

const (
	ModePublic Mode = "public"
	ModeAdmin  Mode = "admin"
)

type Section string

const (
	SectionHero  Section = "hero"
	SectionWork  Section = "work"
	SectionAbout Section = "about"
)

// Sections lists admin sections in sidebar order.
var Sections = []Section{SectionHero, SectionWork, SectionAbout}

func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownSection)
}

// State is ephemeral UI state. It is never persisted.
type State struct {
	Mode    Mode
	Section Section
}

// Initial is the state of a new visitor: public site, hero section.
func Initial() State {
	return State{Mode: ModePublic, Section: SectionHero}
}

func (s State) Enter(m Mode) State {
	s.Mode = m
	return s
}

// Select keeps the mode; the section only matters once in admin.
func (s State) Select(sec Section) State {
	s.Section = sec
	return s
}

// Screen is what gets rendered.
type Screen int

const (
	ScreenPublic Screen = iota
	ScreenLogin
	ScreenEditor
)

func (s Screen) String() string {
	switch s {
	case ScreenPublic:
		return "public"
	case ScreenLogin:
		return "login"
	case ScreenEditor:
		return "editor"
	}
	return "unknown"
}

// Resolve picks the screen. Admin mode never reaches the editor unless the
// gate reports authenticated.
func Resolve(s State, authenticated bool) Screen {
	if s.Mode != ModeAdmin {
		return ScreenPublic
	}
	if !authenticated {
		return ScreenLogin
	}
	return ScreenEditor
}

package staff

import (
	"errors"
	"strings"
)

// Staff is a team member shown on the "Our Team" page. DisplayOrder defines
// the presentation order (ascending, ties broken by storage order).
type Staff struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Bio          string `json:"bio,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
	Email        string `json:"email"`
	DisplayOrder int    `json:"display_order"`
}

// Errors
var (
	ErrInvalidID    = errors.New("staff: invalid id")
	ErrInvalidName  = errors.New("staff: invalid name")
	ErrInvalidRole  = errors.New("staff: invalid role")
	ErrInvalidEmail = errors.New("staff: invalid email")

	ErrNotFound = errors.New("staff: not found")
	ErrConflict = errors.New("staff: conflict")
)

// New constructs a Staff with required fields.
func New(id, name, role, email string, displayOrder int) (Staff, error) {
	s := Staff{
		ID:           strings.TrimSpace(id),
		Name:         strings.TrimSpace(name),
		Role:         strings.TrimSpace(role),
		Email:        strings.TrimSpace(email),
		DisplayOrder: displayOrder,
	}
	if err := s.validate(); err != nil {
		return Staff{}, err
	}
	return s, nil
}

func (s Staff) validate() error {
	if s.ID == "" {
		return ErrInvalidID
	}
	if s.Name == "" {
		return ErrInvalidName
	}
	if s.Role == "" {
		return ErrInvalidRole
	}
	if s.Email == "" || !strings.Contains(s.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// Initials is the placeholder shown when no photo is set ("John Doe" -> "JD").
func (s Staff) Initials() string {
	var initials []rune
	for _, part := range strings.Fields(s.Name) {
		r := []rune(part)
		if len(r) > 0 {
			initials = append(initials, r[0])
		}
		if len(initials) >= 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

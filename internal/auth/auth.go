// Package auth is the local, single-device credential check: a user table
// and at most one session record in durable storage. It is not a trust
// boundary.
//
// Passwords are stored and compared verbatim. Reusing this package anywhere
// beyond a single-user local demo requires replacing that with a salted
// one-way hash and a constant-time comparison first.
package auth

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrossetti/notekeep/internal/apperror"
	"github.com/mrossetti/notekeep/internal/storage"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the single logged-in record. Its presence in durable storage is
// the sole authentication signal; it is a plain record, not a credential.
type Session struct {
	UserID     string    `json:"userId"`
	Email      string    `json:"email"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// View is what callers see of the current user; it never exposes the stored
// password.
type View struct {
	ID         string
	Email      string
	CreatedAt  time.Time
	LoggedInAt time.Time
}

type Manager struct {
	store storage.Store
}

func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) users() []User {
	var users []User
	if !m.store.Load(storage.KeyUsers, &users) {
		return []User{}
	}
	if users == nil {
		users = []User{}
	}
	return users
}

func (m *Manager) findUser(email string) *User {
	for _, u := range m.users() {
		if strings.EqualFold(u.Email, email) {
			return &u
		}
	}
	return nil
}

func (m *Manager) session() *Session {
	var s Session
	if !m.store.Load(storage.KeySession, &s) {
		return nil
	}
	return &s
}

func (m *Manager) startSession(u User) (*Session, error) {
	s := Session{
		UserID:     u.ID,
		Email:      u.Email,
		LoggedInAt: time.Now(),
	}
	if err := m.store.Save(storage.KeySession, s).Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Signup validates the credentials, creates the user and logs it in
// immediately. Failures carry a Field discriminator so the UI can attach the
// message to the right input.
func (m *Manager) Signup(email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" {
		return nil, apperror.Validation(apperror.FieldEmail, "email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperror.Validation(apperror.FieldEmail, "please enter a valid email address")
	}
	if password == "" {
		return nil, apperror.Validation(apperror.FieldPassword, "password is required")
	}
	if len(password) < MinPasswordLength {
		return nil, apperror.Validation(apperror.FieldPassword, "password must be at least 8 characters long")
	}
	if m.findUser(email) != nil {
		return nil, apperror.Duplicate(apperror.FieldEmail, "an account with this email already exists")
	}

	u := User{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(email),
		Password:  password,
		CreatedAt: time.Now(),
	}
	users := append(m.users(), u)
	if err := m.store.Save(storage.KeyUsers, users).Err(); err != nil {
		return nil, err
	}

	return m.startSession(u)
}

// Login writes a fresh session on success and leaves any existing session
// untouched on failure.
func (m *Manager) Login(email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" {
		return nil, apperror.Validation(apperror.FieldEmail, "email is required")
	}
	if password == "" {
		return nil, apperror.Validation(apperror.FieldPassword, "password is required")
	}

	u := m.findUser(email)
	if u == nil {
		return nil, apperror.Validation(apperror.FieldEmail, "no account found with this email")
	}
	if u.Password != password {
		return nil, apperror.Validation(apperror.FieldPassword, "incorrect password")
	}

	return m.startSession(*u)
}

// Logout clears the session unconditionally.
func (m *Manager) Logout() {
	m.store.Delete(storage.KeySession)
}

// IsAuthenticated is true iff a well-formed session record exists.
func (m *Manager) IsAuthenticated() bool {
	s := m.session()
	return s != nil && s.UserID != "" && s.Email != ""
}

// CurrentUser resolves the session to its user record. A session whose user
// has been deleted reads as logged out.
func (m *Manager) CurrentUser() *View {
	s := m.session()
	if s == nil || s.UserID == "" || s.Email == "" {
		return nil
	}
	for _, u := range m.users() {
		if u.ID == s.UserID {
			return &View{
				ID:         u.ID,
				Email:      u.Email,
				CreatedAt:  u.CreatedAt,
				LoggedInAt: s.LoggedInAt,
			}
		}
	}
	return nil
}

// ChangePassword requires an active session and a new password that is long
// enough and different from the current one.
func (m *Manager) ChangePassword(current, newPassword string) error {
	s := m.session()
	if s == nil || s.UserID == "" {
		return apperror.Unauthorized("you must be logged in to change your password")
	}

	users := m.users()
	idx := -1
	for i := range users {
		if users[i].ID == s.UserID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperror.Unauthorized("you must be logged in to change your password")
	}

	if users[idx].Password != current {
		return apperror.Validation(apperror.FieldPassword, "current password is incorrect")
	}
	if len(newPassword) < MinPasswordLength {
		return apperror.Validation(apperror.FieldPassword, "new password must be at least 8 characters long")
	}
	if newPassword == current {
		return apperror.Validation(apperror.FieldPassword, "new password must be different from the current password")
	}

	users[idx].Password = newPassword
	return m.store.Save(storage.KeyUsers, users).Err()
}

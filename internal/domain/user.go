package domain

import "errors"

// Error kinds used across the service. Handlers flatten these to the
// coarse client-facing messages; internally they stay distinct so logs
// and tests can tell the real cause apart.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrEmailTaken    = errors.New("email already exists")
	ErrSignupFailed  = errors.New("signup failed")
	ErrInvalidToken  = errors.New("invalid token")
)

// Contact is a name/note pair owned by exactly one user. It has no
// identity of its own.
type Contact struct {
	Name string `bson:"name" json:"name"`
	Note string `bson:"note" json:"note"`
}

type User struct {
	ID       string    `bson:"_id,omitempty" json:"id"`
	Email    string    `bson:"email" json:"email"`
	Password string    `bson:"password" json:"-"` // bcrypt hash, never the plaintext
	Contacts []Contact `bson:"contacts" json:"contacts"`
}

// NewUser builds a user with an empty (non-nil) contact list. The
// password must already be hashed.
func NewUser(email, hashedPassword string) *User {
	return &User{
		Email:    email,
		Password: hashedPassword,
		Contacts: []Contact{},
	}
}

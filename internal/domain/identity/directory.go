package identity

import (
	"github.com/alem-hub/alem-lms/internal/domain/shared"
)

// Directory is the flat, ordered list of all registered identities. It is
// consulted for login and duplicate-email detection only; identities are
// never deleted except when a freshly created account is rolled back
// after a failed enrollment.
//
// The directory owns its identities: lookups return copies, and all
// mutation goes through Register and Unregister.
type Directory struct {
	identities []*Identity
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{}
}

// Register appends an identity to the directory. It fails with a
// conflict error if another identity already uses the same email.
func (d *Directory) Register(id *Identity) error {
	if id == nil {
		return shared.NewDomainError("identity", "Register", shared.ErrInvalidInput, "identity is nil")
	}
	if d.exists(id.Email) {
		return shared.ErrDuplicateEmail
	}
	d.identities = append(d.identities, id.Clone())
	return nil
}

// Unregister removes the identity with the given email. It exists to
// support rollback of accounts created during a failed enrollment;
// there is no general account-deletion workflow.
func (d *Directory) Unregister(email string) error {
	for i, id := range d.identities {
		if id.Email == email {
			d.identities = append(d.identities[:i], d.identities[i+1:]...)
			return nil
		}
	}
	return shared.ErrIdentityNotFound
}

// FindByEmail returns a copy of the identity with the given email.
func (d *Directory) FindByEmail(email string) (*Identity, error) {
	for _, id := range d.identities {
		if id.Email == email {
			return id.Clone(), nil
		}
	}
	return nil, shared.ErrIdentityNotFound
}

// Authenticate performs a pure linear-scan credential lookup. It has no
// side effects and no session concept: the boundary layer owns the login
// loop. Passwords are compared in plain text, matching the historical
// behavior of the system.
func (d *Directory) Authenticate(email, password string) (*Identity, error) {
	for _, id := range d.identities {
		if id.Email == email && id.Password == password {
			return id.Clone(), nil
		}
	}
	return nil, shared.ErrBadCredentials
}

// Size returns the number of registered identities.
func (d *Directory) Size() int {
	return len(d.identities)
}

func (d *Directory) exists(email string) bool {
	for _, id := range d.identities {
		if id.Email == email {
			return true
		}
	}
	return false
}

package user

import (
	"errors"
	"strings"
	"time"

	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// profileRules applies the same "email" rule the HTTP requests are validated with.
var profileRules = validator.New()

// Profile holds the optional personal data of a user.
type Profile struct {
	Name           string
	Email          string
	Contact        string
	BirthDate      *time.Time
	ProfileImageID string
}

type User struct {
	id            kernel.UUID
	walletAddress kernel.WalletAddress
	profile       Profile
	joinDate      time.Time

	isConstructed bool
}

// NewUser registers a new user with a generated id joined at now.
func NewUser(walletAddress string, profile Profile, now time.Time) (*User, error) {
	return RestoreUser(kernel.NewUUID(), walletAddress, profile, now)
}

// RestoreUser rebuilds a user from stored values.
func RestoreUser(id kernel.UUID, walletAddress string, profile Profile, joinDate time.Time) (*User, error) {
	wallet, walletErr := kernel.NewWalletAddress(walletAddress)

	var joinErr error
	if joinDate.IsZero() {
		joinErr = errs.NewValueIsRequiredError("joinDate")
	}

	if err := errors.Join(id.Validate(), walletErr, validateProfile(&profile), joinErr); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		walletAddress: wallet,
		profile:       profile,
		joinDate:      joinDate.UTC(),
		isConstructed: true,
	}, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) WalletAddress() kernel.WalletAddress {
	return u.walletAddress
}

func (u *User) Profile() Profile {
	return u.profile
}

func (u *User) JoinDate() time.Time {
	return u.joinDate
}

func validateProfile(p *Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Contact = strings.TrimSpace(p.Contact)
	p.ProfileImageID = strings.TrimSpace(p.ProfileImageID)

	if p.Email == "" {
		return nil
	}
	if err := profileRules.Var(p.Email, "email"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return nil
}

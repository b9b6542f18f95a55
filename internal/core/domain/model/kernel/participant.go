package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"delivery-order/internal/pkg/errs"
	"delivery-order/internal/pkg/guard"
)

// ErrParticipantIsNotConstructed is returned when a zero value Participant is used.
var ErrParticipantIsNotConstructed = errs.NewValueIsRequiredError(
	"participant must be created via NewParticipant constructor")

// phonePattern accepts an optional leading '+' followed by 8 to 15 digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// Participant is the contact of the sender at the departure or the receiver at
// the destination of an order.
type Participant struct { //nolint:recvcheck // setters use pointer receivers during construction
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewParticipant trims both values, requires a name and a phone made of digits.
func NewParticipant(name, phone string) (Participant, error) {
	p := Participant{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setName(name), p.setPhone(phone)); err != nil {
		return Participant{}, err
	}

	return p, nil
}

func (p Participant) Validate() error {
	return p.guard.Validate(ErrParticipantIsNotConstructed)
}

func (p Participant) Name() string {
	return p.name
}

func (p Participant) Phone() string {
	return p.phone
}

func (p *Participant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = name
	return nil
}

func (p *Participant) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q is not a phone number", phone))
	}

	p.phone = phone
	return nil
}

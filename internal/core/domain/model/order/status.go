package order

import (
	"fmt"
	"strings"

	"delivery-order/internal/pkg/errs"
)

// Status is the lifecycle value stored in orders.status.
//
// This package only writes Created. The other values are set by the matching
// and delivery flows and are read back by the repository status filters.
type Status string

const (
	Created    Status = "created"
	Matched    Status = "matched"
	Delivering Status = "delivering"
	Delivered  Status = "delivered"
	Completed  Status = "completed"
	Canceled   Status = "canceled"
)

// AllStatuses lists every known status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Created, Matched, Delivering, Delivered, Completed, Canceled}
}

// Validate checks that s is one of AllStatuses.
func (s Status) Validate() error {
	for _, known := range AllStatuses() {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

func (s Status) String() string {
	return string(s)
}

// ParseStatuses parses a comma separated list such as "created,delivered".
// Blank items are skipped and duplicates collapsed; an empty list is an error.
func ParseStatuses(raw string) ([]Status, error) {
	seen := make(map[Status]struct{})
	statuses := make([]Status, 0)

	for _, item := range strings.Split(raw, ",") {
		s := Status(strings.ToLower(strings.TrimSpace(item)))
		if s == "" {
			continue
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		statuses = append(statuses, s)
	}

	if len(statuses) == 0 {
		return nil, errs.NewValueIsRequiredError("statuses")
	}

	return statuses, nil
}

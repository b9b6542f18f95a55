package orderrepo

import (
	"errors"

	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/pkg/errs"
)

// StatusPolicy holds the status sets used by the read queries.
//
// DetailStatuses filters FindAllCreatedOrDeliveredOrderDetailByOrderIDs.
// MatchableStatuses filters FindAllMatchableOrderByWalletAddress.
type StatusPolicy struct {
	DetailStatuses    []order.Status
	MatchableStatuses []order.Status
}

// DefaultStatusPolicy shows created and delivered orders in details and lets
// only created orders be matched.
func DefaultStatusPolicy() StatusPolicy {
	return StatusPolicy{
		DetailStatuses:    []order.Status{order.Created, order.Delivered},
		MatchableStatuses: []order.Status{order.Created},
	}
}

// Validate reports an empty set as ErrValueIsRequired and an unknown status
// as ErrValueIsInvalid. Problems in both sets are joined.
func (p StatusPolicy) Validate() error {
	return errors.Join(
		validateStatuses("detailStatuses", p.DetailStatuses),
		validateStatuses("matchableStatuses", p.MatchableStatuses),
	)
}

// withDefaults fills empty sets from DefaultStatusPolicy.
func (p StatusPolicy) withDefaults() StatusPolicy {
	defaults := DefaultStatusPolicy()
	if len(p.DetailStatuses) == 0 {
		p.DetailStatuses = defaults.DetailStatuses
	}
	if len(p.MatchableStatuses) == 0 {
		p.MatchableStatuses = defaults.MatchableStatuses
	}
	return p
}

func validateStatuses(param string, statuses []order.Status) error {
	if len(statuses) == 0 {
		return errs.NewValueIsRequiredError(param)
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func statusStrings(statuses []order.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}

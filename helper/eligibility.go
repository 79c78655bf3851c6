package helper

import (
	"time"

	"studio_manager/constants"
	"studio_manager/model"
)

// SessionOccupancy is the capacity view of the target session: item
// capacity plus the current non-cancelled booking count.
type SessionOccupancy struct {
	Capacity int
	Booked   int64
}

// MembershipQuota is the flattened view of one membership against the
// session's item: whether the product covers the item at all, and under
// which quota rule with how much left.
type MembershipQuota struct {
	MembershipId  uint
	ProductName   string
	Status        string
	ExpiryDate    time.Time
	Covered       bool
	QuotaType     string // INDIVIDUAL | SHARED | FREE when Covered
	Remaining     int    // counter for INDIVIDUAL/SHARED; ignored for FREE
	ProductItemId uint
	QuotaPoolId   *uint
}

// EligibleMembership is one membership the member may pay the booking
// with. RemainingQuota is nil for unlimited (FREE) access.
type EligibleMembership struct {
	MembershipId   uint   `json:"membershipId"`
	ProductName    string `json:"productName"`
	QuotaType      string `json:"quotaType"`
	RemainingQuota *int   `json:"remainingQuota"`
}

// EligibilityResult is a normal evaluation outcome, never an error:
// ineligibility reasons are surfaced as a plain reason string.
type EligibilityResult struct {
	CanJoin             bool                 `json:"canJoin"`
	AlreadyBooked       bool                 `json:"alreadyBooked"`
	Reason              string               `json:"reason,omitempty"`
	EligibleMemberships []EligibleMembership `json:"eligibleMemberships,omitempty"`
}

// EvaluateEligibility decides whether a member can book a session, purely
// from the supplied views. Decision order: already booked, then capacity,
// then per-membership quota. Read-only; quota mutation happens only inside
// the reserve transaction.
func EvaluateEligibility(alreadyBooked bool, occ SessionOccupancy, memberships []MembershipQuota, now time.Time) EligibilityResult {
	if alreadyBooked {
		return EligibilityResult{AlreadyBooked: true, Reason: "you already booked this session"}
	}
	if occ.Booked >= int64(occ.Capacity) {
		return EligibilityResult{Reason: "session full"}
	}

	var eligible []EligibleMembership
	firstReason := ""
	sawActive := false

	for _, mq := range memberships {
		if mq.Status != model.MembershipActive || (!mq.ExpiryDate.IsZero() && mq.ExpiryDate.Before(now)) {
			continue
		}
		sawActive = true

		if !mq.Covered {
			if firstReason == "" {
				firstReason = "your plan does not include this class"
			}
			continue
		}

		switch mq.QuotaType {
		case constants.QUOTA_FREE:
			eligible = append(eligible, EligibleMembership{
				MembershipId:   mq.MembershipId,
				ProductName:    mq.ProductName,
				QuotaType:      mq.QuotaType,
				RemainingQuota: nil,
			})
		case constants.QUOTA_INDIVIDUAL, constants.QUOTA_SHARED:
			if mq.Remaining > 0 {
				remaining := mq.Remaining
				eligible = append(eligible, EligibleMembership{
					MembershipId:   mq.MembershipId,
					ProductName:    mq.ProductName,
					QuotaType:      mq.QuotaType,
					RemainingQuota: &remaining,
				})
			} else if firstReason == "" {
				firstReason = "quota exhausted"
			}
		}
	}

	if len(eligible) > 0 {
		return EligibilityResult{CanJoin: true, EligibleMemberships: eligible}
	}
	if !sawActive {
		return EligibilityResult{Reason: "no active membership"}
	}
	return EligibilityResult{Reason: firstReason}
}

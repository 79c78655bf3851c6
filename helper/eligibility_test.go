package helper

import (
	"testing"
	"time"

	"studio_manager/constants"
	"studio_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func activeQuota(id uint, quotaType string, remaining int) MembershipQuota {
	return MembershipQuota{
		MembershipId:  id,
		ProductName:   "Standard",
		Status:        model.MembershipActive,
		ExpiryDate:    evalNow.AddDate(0, 1, 0),
		Covered:       true,
		QuotaType:     quotaType,
		Remaining:     remaining,
		ProductItemId: 10,
	}
}

func TestEvaluateEligibilityAlreadyBooked(t *testing.T) {
	occ := SessionOccupancy{Capacity: 10, Booked: 2}
	result := EvaluateEligibility(true, occ, []MembershipQuota{activeQuota(1, constants.QUOTA_FREE, 0)}, evalNow)

	assert.False(t, result.CanJoin)
	assert.True(t, result.AlreadyBooked)
	assert.Equal(t, "you already booked this session", result.Reason)
}

func TestEvaluateEligibilitySessionFull(t *testing.T) {
	occ := SessionOccupancy{Capacity: 10, Booked: 10}
	result := EvaluateEligibility(false, occ, []MembershipQuota{activeQuota(1, constants.QUOTA_FREE, 0)}, evalNow)

	assert.False(t, result.CanJoin)
	assert.Equal(t, "session full", result.Reason)
}

func TestEvaluateEligibilityNoMembership(t *testing.T) {
	occ := SessionOccupancy{Capacity: 10, Booked: 0}
	result := EvaluateEligibility(false, occ, nil, evalNow)

	assert.False(t, result.CanJoin)
	assert.Equal(t, "no active membership", result.Reason)
}

func TestEvaluateEligibilityExpiredMembershipIgnored(t *testing.T) {
	expired := activeQuota(1, constants.QUOTA_FREE, 0)
	expired.ExpiryDate = evalNow.AddDate(0, -1, 0)

	result := EvaluateEligibility(false, SessionOccupancy{Capacity: 10}, []MembershipQuota{expired}, evalNow)
	assert.False(t, result.CanJoin)
	assert.Equal(t, "no active membership", result.Reason)
}

func TestEvaluateEligibilityFrozenMembershipIgnored(t *testing.T) {
	frozen := activeQuota(1, constants.QUOTA_FREE, 0)
	frozen.Status = model.MembershipFreezed

	result := EvaluateEligibility(false, SessionOccupancy{Capacity: 10}, []MembershipQuota{frozen}, evalNow)
	assert.False(t, result.CanJoin)
	assert.Equal(t, "no active membership", result.Reason)
}

func TestEvaluateEligibilityNotCovered(t *testing.T) {
	uncovered := MembershipQuota{
		MembershipId: 1,
		Status:       model.MembershipActive,
		ExpiryDate:   evalNow.AddDate(0, 1, 0),
		Covered:      false,
	}

	result := EvaluateEligibility(false, SessionOccupancy{Capacity: 10}, []MembershipQuota{uncovered}, evalNow)
	assert.False(t, result.CanJoin)
	assert.Equal(t, "your plan does not include this class", result.Reason)
}

func TestEvaluateEligibilityFreeAccess(t *testing.T) {
	result := EvaluateEligibility(false, SessionOccupancy{Capacity: 10},
		[]MembershipQuota{activeQuota(1, constants.QUOTA_FREE, 0)}, evalNow)

	assert.True(t, result.CanJoin)
	require.Len(t, result.EligibleMemberships, 1)
	assert.Nil(t, result.EligibleMemberships[0].RemainingQuota)
}

func TestEvaluateEligibilityIndividualQuota(t *testing.T) {
	result := EvaluateEligibility(false, SessionOccupancy{Capacity: 10},
		[]MembershipQuota{activeQuota(1, constants.QUOTA_INDIVIDUAL, 3)}, evalNow)

	assert.True(t, result.CanJoin)
	require.Len(t, result.EligibleMemberships, 1)
	require.NotNil(t, result.EligibleMemberships[0].RemainingQuota)
	assert.Equal(t, 3, *result.EligibleMemberships[0].RemainingQuota)
}

func TestEvaluateEligibilityQuotaExhausted(t *testing.T) {
	result := EvaluateEligibility(false, SessionOccupancy{Capacity: 10},
		[]MembershipQuota{activeQuota(1, constants.QUOTA_INDIVIDUAL, 0)}, evalNow)

	assert.False(t, result.CanJoin)
	assert.Equal(t, "quota exhausted", result.Reason)
}

func TestEvaluateEligibilitySharedQuota(t *testing.T) {
	shared := activeQuota(1, constants.QUOTA_SHARED, 5)
	poolId := uint(42)
	shared.QuotaPoolId = &poolId

	result := EvaluateEligibility(false, SessionOccupancy{Capacity: 10}, []MembershipQuota{shared}, evalNow)
	assert.True(t, result.CanJoin)
	require.Len(t, result.EligibleMemberships, 1)
	assert.Equal(t, constants.QUOTA_SHARED, result.EligibleMemberships[0].QuotaType)
}

func TestEvaluateEligibilitySharedQuotaBoundary(t *testing.T) {
	poolId := uint(42)

	// Drained pool: the plan covers the class but cannot pay for it.
	drained := activeQuota(1, constants.QUOTA_SHARED, 0)
	drained.QuotaPoolId = &poolId
	result := EvaluateEligibility(false, SessionOccupancy{Capacity: 10}, []MembershipQuota{drained}, evalNow)
	assert.False(t, result.CanJoin)
	assert.Equal(t, "quota exhausted", result.Reason)

	// One unit left: bookable, and the balance is reported.
	lastUnit := activeQuota(1, constants.QUOTA_SHARED, 1)
	lastUnit.QuotaPoolId = &poolId
	result = EvaluateEligibility(false, SessionOccupancy{Capacity: 10}, []MembershipQuota{lastUnit}, evalNow)
	assert.True(t, result.CanJoin)
	require.Len(t, result.EligibleMemberships, 1)
	require.NotNil(t, result.EligibleMemberships[0].RemainingQuota)
	assert.Equal(t, 1, *result.EligibleMemberships[0].RemainingQuota)
}

func TestEvaluateEligibilityMultipleMemberships(t *testing.T) {
	// One exhausted, one still usable: the member can join and the usable
	// one is offered.
	exhausted := activeQuota(1, constants.QUOTA_INDIVIDUAL, 0)
	usable := activeQuota(2, constants.QUOTA_INDIVIDUAL, 2)

	result := EvaluateEligibility(false, SessionOccupancy{Capacity: 10},
		[]MembershipQuota{exhausted, usable}, evalNow)

	assert.True(t, result.CanJoin)
	require.Len(t, result.EligibleMemberships, 1)
	assert.Equal(t, uint(2), result.EligibleMemberships[0].MembershipId)
}

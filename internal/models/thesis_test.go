package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionIsAdmin(t *testing.T) {
	assert.True(t, Session{Role: RoleAdmin}.IsAdmin())
	assert.True(t, Session{Role: RoleAdminSpring}.IsAdmin())
	assert.False(t, Session{Role: "USER"}.IsAdmin())
	assert.False(t, Session{}.IsAdmin())
}

func TestNormalizeExcludesUploaderFromCount(t *testing.T) {
	th := PendingThesis{
		UploadedBy:          "up@uni.edu",
		Approvals:           []string{"UP@uni.edu", "a@uni.edu", "b@uni.edu"},
		CurrentApprovals:    3,
		TotalAdminsRequired: 3,
	}
	th.Normalize()
	assert.Equal(t, 2, th.CurrentApprovals)
	assert.Equal(t, 1, th.Remaining())
}

func TestNormalizeCapsAtQuorum(t *testing.T) {
	th := PendingThesis{
		Approvals:           []string{"a@uni.edu", "b@uni.edu", "c@uni.edu", "d@uni.edu"},
		TotalAdminsRequired: 3,
	}
	th.Normalize()
	assert.Equal(t, 3, th.CurrentApprovals)
	assert.Zero(t, th.Remaining())
}

func TestNormalizeKeepsCountWithoutApproverSet(t *testing.T) {
	th := PendingThesis{CurrentApprovals: 2, TotalAdminsRequired: 3}
	th.Normalize()
	assert.Equal(t, 2, th.CurrentApprovals)
}

func TestNormalizeBackfillsSubmissionDate(t *testing.T) {
	th := PendingThesis{CreatedAt: "2026-01-02T10:00:00"}
	th.Normalize()
	assert.Equal(t, "2026-01-02T10:00:00", th.SubmissionDate)
}

func TestApprovedByCaseInsensitive(t *testing.T) {
	th := PendingThesis{Approvals: []string{"A@uni.edu"}}
	assert.True(t, th.ApprovedBy("a@uni.edu"))
	assert.False(t, th.ApprovedBy("b@uni.edu"))
	assert.False(t, th.ApprovedBy(""))
}

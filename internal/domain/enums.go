package domain

// ElectionStatus is the lifecycle state of an election.
type ElectionStatus string

const (
	ElectionStatusPending ElectionStatus = "PENDING"
	ElectionStatusActive  ElectionStatus = "ACTIVE"
	ElectionStatusEnded   ElectionStatus = "ENDED"
)

func (s ElectionStatus) String() string { return string(s) }

func (s ElectionStatus) IsValid() bool {
	switch s {
	case ElectionStatusPending, ElectionStatusActive, ElectionStatusEnded:
		return true
	}
	return false
}

// Next returns the only status s may move to. Terminal and unknown statuses
// return false.
func (s ElectionStatus) Next() (ElectionStatus, bool) {
	switch s {
	case ElectionStatusPending:
		return ElectionStatusActive, true
	case ElectionStatusActive:
		return ElectionStatusEnded, true
	}
	return "", false
}

// CanTransitionTo reports whether s -> to is a legal lifecycle step.
func (s ElectionStatus) CanTransitionTo(to ElectionStatus) bool {
	next, ok := s.Next()
	return ok && next == to
}

// VerificationStatus is the admission state of a voter.
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "PENDING"
	VerificationStatusVerified VerificationStatus = "VERIFIED"
	VerificationStatusRejected VerificationStatus = "REJECTED"
)

func (s VerificationStatus) String() string { return string(s) }

func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusVerified, VerificationStatusRejected:
		return true
	}
	return false
}

// AuditAction names a fact recorded in the audit log.
type AuditAction string

const (
	AuditElectionCreated AuditAction = "ELECTION_CREATED"
	AuditElectionStarted AuditAction = "ELECTION_STARTED"
	AuditElectionEnded   AuditAction = "ELECTION_ENDED"
	AuditCandidateAdded  AuditAction = "CANDIDATE_ADDED"
	AuditVoterRegistered AuditAction = "VOTER_REGISTERED"
	AuditVoterApproved   AuditAction = "VOTER_APPROVED"
	AuditVoterRejected   AuditAction = "VOTER_REJECTED"
	AuditVoterAssigned   AuditAction = "VOTER_ASSIGNED"
	AuditPasscodeIssued  AuditAction = "PASSCODE_ISSUED"
	AuditVoteCast        AuditAction = "VOTE_CAST"
)

func (a AuditAction) String() string { return string(a) }

// UserRole represents the authorization level of a caller.
type UserRole string

const (
	UserRoleVoter UserRole = "voter"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleVoter || r == UserRoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

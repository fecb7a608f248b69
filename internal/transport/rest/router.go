package rest

import "net/http"

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Elections *ElectionHandler
	Voters    *VoterHandler
	Passcodes *PasscodeHandler
	Votes     *VoteHandler
	Results   *ResultHandler
	Audit     *AuditHandler

	// PasscodeLimit wraps the passcode request endpoint. May be nil.
	PasscodeLimit func(http.Handler) http.Handler
}

// NewRouter registers all routes on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /admin/elections", h.Elections.Create)
	mux.HandleFunc("POST /admin/elections/{id}/start", h.Elections.Start)
	mux.HandleFunc("POST /admin/elections/{id}/end", h.Elections.End)
	mux.HandleFunc("POST /admin/elections/{id}/candidates", h.Elections.AddCandidate)
	mux.HandleFunc("GET /elections", h.Elections.List)
	mux.HandleFunc("GET /elections/active", h.Elections.ListActive)
	mux.HandleFunc("GET /elections/{id}", h.Elections.Get)
	mux.HandleFunc("GET /elections/{id}/candidates", h.Elections.Candidates)

	mux.HandleFunc("POST /voters/me", h.Voters.Register)
	mux.HandleFunc("GET /voters/me", h.Voters.Me)
	mux.HandleFunc("GET /admin/voters/pending", h.Voters.Pending)
	mux.HandleFunc("POST /admin/voters/{id}/approve", h.Voters.Approve)
	mux.HandleFunc("POST /admin/voters/{id}/reject", h.Voters.Reject)
	mux.HandleFunc("POST /admin/elections/{id}/voters/{voterID}", h.Voters.Assign)

	var request http.Handler = http.HandlerFunc(h.Passcodes.Request)
	if h.PasscodeLimit != nil {
		request = h.PasscodeLimit(request)
	}
	mux.Handle("POST /elections/{id}/passcode", request)
	mux.HandleFunc("POST /elections/{id}/passcode/verify", h.Passcodes.Verify)

	mux.HandleFunc("POST /elections/{id}/votes", h.Votes.Cast)
	mux.HandleFunc("POST /elections/{id}/receipts", h.Votes.Receipt)
	mux.HandleFunc("GET /elections/{id}/votes/me", h.Votes.Status)
	mux.HandleFunc("GET /votes/me", h.Votes.History)

	mux.HandleFunc("GET /results/{id}", h.Results.Get)

	mux.HandleFunc("GET /admin/audit", h.Audit.List)
	mux.HandleFunc("GET /admin/audit/transactions", h.Audit.Transactions)

	return mux
}

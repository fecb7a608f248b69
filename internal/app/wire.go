package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/evoting-backend/internal/adapter/ledger"
	"github.com/heartmarshall/evoting-backend/internal/adapter/notify"
	"github.com/heartmarshall/evoting-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/evoting-backend/internal/adapter/postgres/audit"
	candidaterepo "github.com/heartmarshall/evoting-backend/internal/adapter/postgres/candidate"
	electionrepo "github.com/heartmarshall/evoting-backend/internal/adapter/postgres/election"
	eligibilityrepo "github.com/heartmarshall/evoting-backend/internal/adapter/postgres/eligibility"
	passcoderepo "github.com/heartmarshall/evoting-backend/internal/adapter/postgres/passcode"
	voterepo "github.com/heartmarshall/evoting-backend/internal/adapter/postgres/vote"
	voterrepo "github.com/heartmarshall/evoting-backend/internal/adapter/postgres/voter"
	"github.com/heartmarshall/evoting-backend/internal/auth"
	"github.com/heartmarshall/evoting-backend/internal/config"
	"github.com/heartmarshall/evoting-backend/internal/nullifier"
	"github.com/heartmarshall/evoting-backend/internal/service/audit"
	"github.com/heartmarshall/evoting-backend/internal/service/ballot"
	"github.com/heartmarshall/evoting-backend/internal/service/election"
	"github.com/heartmarshall/evoting-backend/internal/service/passcode"
	"github.com/heartmarshall/evoting-backend/internal/service/tally"
	"github.com/heartmarshall/evoting-backend/internal/service/voter"
	"github.com/heartmarshall/evoting-backend/internal/transport/middleware"
	"github.com/heartmarshall/evoting-backend/internal/transport/rest"
)

// components is everything Run starts and stops besides the pool and ledger.
type components struct {
	handler http.Handler
	sweeper *passcode.Sweeper
	limiter *middleware.RateLimiter
}

// wire builds repositories, services and the HTTP handler chain.
func wire(
	cfg *config.Config,
	pool *pgxpool.Pool,
	gateway ledgerPinger,
	sender notify.Sender,
	logger *slog.Logger,
) (*components, error) {
	deriver, err := nullifier.New(cfg.Nullifier.Salt)
	if err != nil {
		return nil, fmt.Errorf("nullifier: %w", err)
	}
	contract := ledger.NewContract(gateway)

	// Repositories.
	txm := postgres.NewTxManager(pool)
	elections := electionrepo.New(pool)
	candidates := candidaterepo.New(pool)
	voters := voterrepo.New(pool)
	eligibility := eligibilityrepo.New(pool)
	passcodes := passcoderepo.New(pool)
	votes := voterepo.New(pool)
	audits := auditrepo.New(pool)

	// Services.
	auditSvc := audit.NewService(logger, audits)
	electionSvc := election.NewService(logger, elections, candidates, contract, auditSvc, txm)
	voterSvc := voter.NewService(logger, voters, elections, eligibility, contract, sender, auditSvc)
	passcodeSvc := passcode.NewService(logger, passcode.Deps{
		Passcodes:     passcodes,
		Elections:     elections,
		Voters:        voters,
		Eligibility:   eligibility,
		Participation: votes,
		Nullifier:     deriver,
		Notifier:      sender,
		Audit:         auditSvc,
		Tx:            txm,
	}, cfg.Passcode.TTL)
	ballotSvc := ballot.NewService(logger, ballot.Deps{
		Elections:   elections,
		Candidates:  candidates,
		Voters:      voters,
		Eligibility: eligibility,
		Votes:       votes,
		Nullifier:   deriver,
		Ledger:      contract,
		Audit:       auditSvc,
		Tx:          txm,
	}, ballot.Options{
		RelayToLedger:     cfg.Ballot.RelayToLedger,
		AnonymizeVotes:    cfg.Ballot.AnonymizeVotes,
		PlaceholderPrefix: cfg.Ballot.PlaceholderPrefix,
	})

	var counter tally.VoteCounter = tally.NewStoreCounter(votes)
	if cfg.Tally.Source == config.TallySourceLedger {
		counter = tally.NewLedgerCounter(contract, cfg.Ledger.MaxConcurrentCalls)
	}
	tallySvc := tally.NewService(logger, elections, candidates, counter)

	// HTTP.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(5 * time.Minute)

	health := rest.NewHealthHandler(pool, nil, BuildVersion())
	if cfg.Ledger.Enabled() {
		health = rest.NewHealthHandler(pool, gateway, BuildVersion())
	}

	router := rest.NewRouter(rest.Handlers{
		Health:        health,
		Elections:     rest.NewElectionHandler(electionSvc, logger),
		Voters:        rest.NewVoterHandler(voterSvc, logger),
		Passcodes:     rest.NewPasscodeHandler(passcodeSvc, logger),
		Votes:         rest.NewVoteHandler(ballotSvc, logger),
		Results:       rest.NewResultHandler(tallySvc, logger),
		Audit:         rest.NewAuditHandler(auditSvc, logger),
		PasscodeLimit: limiter.Limit(cfg.Passcode.RequestRatePerMinute),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(router)

	return &components{
		handler: handler,
		sweeper: passcode.NewSweeper(logger, passcodes, cfg.Passcode.SweepInterval),
		limiter: limiter,
	}, nil
}

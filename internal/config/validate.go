package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const maxSaltBytes = 32

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Ledger.validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	if err := c.Passcode.validate(); err != nil {
		return fmt.Errorf("passcode: %w", err)
	}

	salt := c.Nullifier.Salt
	if salt == "" {
		return fmt.Errorf("nullifier.salt is required")
	}
	if len(salt) > maxSaltBytes {
		return fmt.Errorf("nullifier.salt must be at most %d bytes (got %d)", maxSaltBytes, len(salt))
	}

	if strings.TrimSpace(c.Ballot.PlaceholderPrefix) == "" {
		return fmt.Errorf("ballot.placeholder_prefix must not be empty")
	}
	if strings.HasPrefix(c.Ballot.PlaceholderPrefix, "0x") {
		return fmt.Errorf("ballot.placeholder_prefix must not look like a transaction hash")
	}

	switch c.Tally.Source {
	case TallySourceStore:
	case TallySourceLedger:
		if !c.Ledger.Enabled() {
			return fmt.Errorf("tally.source=ledger requires ledger.rpc_url")
		}
	default:
		return fmt.Errorf("tally.source must be %q or %q (got %q)", TallySourceStore, TallySourceLedger, c.Tally.Source)
	}

	if c.Mail.Enabled() && (c.Mail.Port <= 0 || c.Mail.Port > 65535) {
		return fmt.Errorf("mail.port must be in 1..65535 (got %d)", c.Mail.Port)
	}

	return nil
}

func (l *LedgerConfig) validate() error {
	if l.CallTimeout <= 0 {
		return fmt.Errorf("call_timeout must be > 0 (got %v)", l.CallTimeout)
	}
	if l.MaxConcurrentCalls <= 0 {
		return fmt.Errorf("max_concurrent_calls must be > 0 (got %d)", l.MaxConcurrentCalls)
	}
	if !l.Enabled() {
		return nil
	}
	if !common.IsHexAddress(l.ContractAddress) {
		return fmt.Errorf("contract_address %q is not a valid address", l.ContractAddress)
	}
	if _, err := crypto.HexToECDSA(strings.TrimPrefix(l.AdminPrivateKey, "0x")); err != nil {
		return fmt.Errorf("admin_private_key: %w", err)
	}
	return nil
}

func (p *PasscodeConfig) validate() error {
	if p.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", p.TTL)
	}
	if p.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be > 0 (got %v)", p.SweepInterval)
	}
	if p.RequestRatePerMinute <= 0 {
		return fmt.Errorf("request_rate_per_minute must be > 0 (got %d)", p.RequestRatePerMinute)
	}
	return nil
}

package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Passcode  PasscodeConfig  `yaml:"passcode"`
	Nullifier NullifierConfig `yaml:"nullifier"`
	Ballot    BallotConfig    `yaml:"ballot"`
	Tally     TallyConfig     `yaml:"tally"`
	Mail      MailConfig      `yaml:"mail"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access-token validation settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"evoting"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LedgerConfig holds the external contract connection. An empty RPCURL runs
// the service with an offline gateway where every call is unavailable.
type LedgerConfig struct {
	RPCURL             string        `yaml:"rpc_url"              env:"LEDGER_RPC_URL"`
	ContractAddress    string        `yaml:"contract_address"     env:"LEDGER_CONTRACT_ADDRESS"`
	AdminPrivateKey    string        `yaml:"admin_private_key"    env:"LEDGER_ADMIN_PRIVATE_KEY"`
	CallTimeout        time.Duration `yaml:"call_timeout"         env:"LEDGER_CALL_TIMEOUT"         env-default:"10s"`
	MaxConcurrentCalls int           `yaml:"max_concurrent_calls" env:"LEDGER_MAX_CONCURRENT_CALLS" env-default:"8"`
}

// Enabled reports whether a ledger endpoint is configured.
func (c LedgerConfig) Enabled() bool {
	return strings.TrimSpace(c.RPCURL) != ""
}

// PasscodeConfig holds one-time passcode settings.
type PasscodeConfig struct {
	TTL                  time.Duration `yaml:"ttl"                     env:"PASSCODE_TTL"                     env-default:"5m"`
	SweepInterval        time.Duration `yaml:"sweep_interval"          env:"PASSCODE_SWEEP_INTERVAL"          env-default:"1h"`
	RequestRatePerMinute int           `yaml:"request_rate_per_minute" env:"PASSCODE_REQUEST_RATE_PER_MINUTE" env-default:"5"`
}

// NullifierConfig holds the deployment-wide nullifier salt.
type NullifierConfig struct {
	Salt string `yaml:"salt" env:"NULLIFIER_SALT" env-required:"true"`
}

// BallotConfig controls how casts are persisted and relayed.
type BallotConfig struct {
	RelayToLedger     bool   `yaml:"relay_to_ledger"    env:"BALLOT_RELAY_TO_LEDGER"    env-default:"true"`
	AnonymizeVotes    bool   `yaml:"anonymize_votes"    env:"BALLOT_ANONYMIZE_VOTES"    env-default:"false"`
	PlaceholderPrefix string `yaml:"placeholder_prefix" env:"BALLOT_PLACEHOLDER_PREFIX" env-default:"local-"`
}

// Tally sources.
const (
	TallySourceStore  = "store"
	TallySourceLedger = "ledger"
)

// TallyConfig selects where vote counts come from.
type TallyConfig struct {
	Source string `yaml:"source" env:"TALLY_SOURCE" env-default:"store"`
}

// MailConfig holds SMTP settings. An empty Host logs messages instead of sending.
type MailConfig struct {
	Host     string `yaml:"host"     env:"MAIL_HOST"`
	Port     int    `yaml:"port"     env:"MAIL_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"MAIL_USERNAME"`
	Password string `yaml:"password" env:"MAIL_PASSWORD"`
	From     string `yaml:"from"     env:"MAIL_FROM"     env-default:"no-reply@evoting.local"`
}

// Enabled reports whether an SMTP relay is configured.
func (c MailConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

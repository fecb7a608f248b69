// Package ledger talks to the external election contract over JSON-RPC.
//
// Every failure is classified as domain.ErrLedgerUnavailable (transport,
// timeout, offline) or domain.ErrLedgerRejected (the node answered with an
// error or the call reverted). Callers treat both as best-effort failures.
package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/heartmarshall/evoting-backend/internal/config"
	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// Gateway is the generic contract surface.
type Gateway interface {
	Submit(ctx context.Context, fn string, args ...any) (string, error)
	Call(ctx context.Context, fn string, args ...any) ([]any, error)
	Confirmed(ctx context.Context, txID string) (bool, error)
}

// chainClient is the subset of *ethclient.Client the gateway uses.
type chainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

var txHashRe = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// IsTxHash reports whether s is a 0x-prefixed 32-byte hex hash.
func IsTxHash(s string) bool {
	return txHashRe.MatchString(s)
}

// gasLimitFallback is used when the node cannot estimate gas for a call it
// would nevertheless accept.
const gasLimitFallback = 300_000

// EthGateway signs and sends transactions with the admin key.
type EthGateway struct {
	client   chainClient
	log      *slog.Logger
	abi      abi.ABI
	contract common.Address
	key      *ecdsa.PrivateKey
	from     common.Address
	timeout  time.Duration

	// mu serialises nonce allocation and caches the chain id.
	mu      sync.Mutex
	chainID *big.Int
}

// Dial connects to the node in cfg and returns a ready gateway plus a close func.
func Dial(ctx context.Context, cfg config.LedgerConfig, log *slog.Logger) (*EthGateway, func(), error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger: dial %s: %w", cfg.RPCURL, err)
	}

	gw, err := newEthGateway(client, cfg, log)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return gw, client.Close, nil
}

func newEthGateway(client chainClient, cfg config.LedgerConfig, log *slog.Logger) (*EthGateway, error) {
	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return nil, fmt.Errorf("ledger: parse abi: %w", err)
	}

	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("ledger: invalid contract address %q", cfg.ContractAddress)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.AdminPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("ledger: admin key: %w", err)
	}

	return &EthGateway{
		client:   client,
		log:      log.With("component", "ledger"),
		abi:      parsed,
		contract: common.HexToAddress(cfg.ContractAddress),
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		timeout:  cfg.CallTimeout,
	}, nil
}

// Submit encodes fn(args...) and sends it as a signed transaction.
// It returns the transaction hash as soon as the node accepted it.
func (g *EthGateway) Submit(ctx context.Context, fn string, args ...any) (string, error) {
	data, err := g.abi.Pack(fn, args...)
	if err != nil {
		return "", fmt.Errorf("ledger %s: pack: %w", fn, err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.mu.Lock()
	defer g.mu.Unlock()

	chainID, err := g.chainIDLocked(ctx)
	if err != nil {
		return "", classify(fn, err)
	}

	nonce, err := g.client.PendingNonceAt(ctx, g.from)
	if err != nil {
		return "", classify(fn, err)
	}

	gasPrice, err := g.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", classify(fn, err)
	}

	gas, err := g.client.EstimateGas(ctx, ethereum.CallMsg{From: g.from, To: &g.contract, Data: data})
	if err != nil {
		// A revert during estimation means the contract refuses the call.
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			return "", classify(fn, err)
		}
		if ctx.Err() != nil {
			return "", classify(fn, ctx.Err())
		}
		g.log.WarnContext(ctx, "gas estimation failed, using fallback", slog.String("fn", fn), slog.String("error", err.Error()))
		gas = gasLimitFallback
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &g.contract,
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), g.key)
	if err != nil {
		return "", fmt.Errorf("ledger %s: sign: %w", fn, err)
	}

	if err := g.client.SendTransaction(ctx, signed); err != nil {
		return "", classify(fn, err)
	}

	txID := signed.Hash().Hex()
	g.log.InfoContext(ctx, "ledger transaction sent",
		slog.String("fn", fn),
		slog.String("tx_id", txID),
		slog.Uint64("nonce", nonce),
	)
	return txID, nil
}

// Call runs a read-only contract call and returns the decoded outputs.
func (g *EthGateway) Call(ctx context.Context, fn string, args ...any) ([]any, error) {
	data, err := g.abi.Pack(fn, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger %s: pack: %w", fn, err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.client.CallContract(ctx, ethereum.CallMsg{To: &g.contract, Data: data}, nil)
	if err != nil {
		return nil, classify(fn, err)
	}

	values, err := g.abi.Unpack(fn, out)
	if err != nil {
		return nil, fmt.Errorf("ledger %s: unpack: %w: %v", fn, domain.ErrLedgerRejected, err)
	}
	return values, nil
}

// Confirmed reports whether txID has a successful receipt. A transaction the
// node does not know yet is unconfirmed, not an error.
func (g *EthGateway) Confirmed(ctx context.Context, txID string) (bool, error) {
	if !IsTxHash(txID) {
		return false, domain.NewValidationError("tx_id", "must be 0x followed by 64 hex characters")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	receipt, err := g.client.TransactionReceipt(ctx, common.HexToHash(txID))
	if errors.Is(err, ethereum.NotFound) {
		return false, nil
	}
	if err != nil {
		return false, classify("receipt", err)
	}
	return receipt.Status == types.ReceiptStatusSuccessful, nil
}

func (g *EthGateway) chainIDLocked(ctx context.Context) (*big.Int, error) {
	if g.chainID != nil {
		return g.chainID, nil
	}
	id, err := g.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	g.chainID = id
	return id, nil
}

// classify maps a node error to a ledger error kind. JSON-RPC errors are
// answers from the node (rejections); everything else is unavailability.
func classify(fn string, err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("ledger %s: %w: %v", fn, domain.ErrLedgerRejected, err)
	}
	return fmt.Errorf("ledger %s: %w: %v", fn, domain.ErrLedgerUnavailable, err)
}

// Ping checks that the node answers. Used by the health endpoint only.
func (g *EthGateway) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	if _, err := g.client.ChainID(ctx); err != nil {
		return classify("ping", err)
	}
	return nil
}

package eth

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/nando-os/ghost-primitives/primitives"
)

type BlockClient interface {
	// BlockByNumber fetches a block with full transactions and converts it,
	// nil means the latest block
	BlockByNumber(number *big.Int) (*primitives.Block, error)

	// ChainID returns the chain ID served by the node
	ChainID() (uint64, error)

	// Close closes the RPC connection
	Close()
}

// RPCClient is the subset of *rpc.Client used by the block client.
type RPCClient interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	Close()
}

// Ensure *rpc.Client implements RPCClient
var _ RPCClient = (*rpc.Client)(nil)

type blockClient struct {
	client RPCClient
	ctx    context.Context
	config Config
}

func NewBlockClient(cfg Config) (BlockClient, error) {
	ctx := context.Background()

	if cfg.RPCURL() == "" {
		return nil, fmt.Errorf("RPC URL is not set, use " + envRpcURL)
	}

	// Log proxy usage if configured
	if os.Getenv("HTTP_PROXY") != "" || os.Getenv("HTTPS_PROXY") != "" {
		log.Info("Connecting to Ethereum network via proxy",
			"http_proxy", os.Getenv("HTTP_PROXY"),
			"https_proxy", os.Getenv("HTTPS_PROXY"))
	}

	// -- Connect to the node
	// HTTP_PROXY and HTTPS_PROXY environment variables are picked up by the rpc HTTP transport
	log.Info("Connecting to Ethereum RPC", "url", cfg.RPCURL())
	client, err := rpc.DialContext(ctx, cfg.RPCURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum network: %w", err)
	}

	bc := &blockClient{
		client: client,
		ctx:    ctx,
		config: cfg,
	}
	if err := bc.verifyChainID(); err != nil {
		client.Close()
		return nil, err
	}
	return bc, nil
}

// verifyChainID checks that the node serves the configured chain
func (bc *blockClient) verifyChainID() error {
	want := bc.config.ChainID()
	if want == 0 {
		log.Info("Chain ID check disabled")
		return nil
	}
	got, err := bc.ChainID()
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	if got != want {
		return fmt.Errorf("expected chain ID %d, got %d", want, got)
	}
	log.Info("Successfully connected to Ethereum network", "chain_id", got)
	return nil
}

// ChainID returns the chain ID served by the node
func (bc *blockClient) ChainID() (uint64, error) {
	ctx, cancel := context.WithTimeout(bc.ctx, bc.config.RequestTimeout())
	defer cancel()

	var result hexutil.U256
	if err := bc.client.CallContext(ctx, &result, "eth_chainId"); err != nil {
		return 0, err
	}
	return narrow("chain_id", &result)
}

// BlockByNumber fetches a block with full transaction objects and converts it
// into its canonical form
func (bc *blockClient) BlockByNumber(number *big.Int) (*primitives.Block, error) {
	ctx, cancel := context.WithTimeout(bc.ctx, bc.config.RequestTimeout())
	defer cancel()

	arg := toBlockNumArg(number)
	log.Debug("Fetching block", "number", arg)

	var raw *RPCBlock
	if err := bc.client.CallContext(ctx, &raw, "eth_getBlockByNumber", arg, true); err != nil {
		log.Error("Failed to fetch block", "number", arg, "error", err)
		return nil, fmt.Errorf("failed to fetch block %s: %w", arg, err)
	}
	// The node answers null for blocks it does not know
	if raw == nil {
		return nil, ethereum.NotFound
	}

	block, err := ConvertBlock(raw, bc.config.BatchPolicy())
	if err != nil {
		log.Error("Failed to convert block", "number", arg, "error", err)
		return nil, fmt.Errorf("failed to convert block %s: %w", arg, err)
	}

	log.Info("Block converted",
		"number", block.Header.Number,
		"txs", len(block.Transactions),
		"withdrawals", len(block.Withdrawals))
	return block, nil
}

func toBlockNumArg(number *big.Int) string {
	if number == nil {
		return "latest"
	}
	return hexutil.EncodeBig(number)
}

// Close closes the RPC connection
func (bc *blockClient) Close() {
	if bc.client != nil {
		bc.client.Close()
	}
}

package eth

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	internalmocks "github.com/nando-os/ghost-primitives/internal/mocks"
	"github.com/nando-os/ghost-primitives/primitives"
)

func testConfig() *config {
	return &config{rpcURL: "http://localhost:8545", chainId: 1, policy: PolicyAbort, timeoutSeconds: 5}
}

func testBlockClient(mockClient RPCClient, cfg *config) *blockClient {
	return &blockClient{
		client: mockClient,
		ctx:    context.Background(),
		config: cfg,
	}
}

// returnBlock makes the mocked call decode block into the caller's result.
func returnBlock(block *RPCBlock) func(mock.Arguments) {
	return func(args mock.Arguments) {
		out := args.Get(1).(**RPCBlock)
		*out = block
	}
}

func TestBlockClient_BlockByNumber(t *testing.T) {
	mockClient := internalmocks.NewRPCClient(t)
	block := testBlock()
	block.Transactions = rawTransactions(t, testLegacyTx(), testEip2930Tx())
	mockClient.On("CallContext", mock.Anything, mock.Anything, "eth_getBlockByNumber", "0x103edb6", true).
		Run(returnBlock(block)).
		Return(nil)

	bc := testBlockClient(mockClient, testConfig())
	got, err := bc.BlockByNumber(big.NewInt(17_034_678))
	require.NoError(t, err)
	assert.Equal(t, uint64(17_034_870), got.Header.Number)
	assert.Len(t, got.Transactions, 2)
}

func TestBlockClient_BlockByNumber_Latest(t *testing.T) {
	mockClient := internalmocks.NewRPCClient(t)
	mockClient.On("CallContext", mock.Anything, mock.Anything, "eth_getBlockByNumber", "latest", true).
		Run(returnBlock(testBlock())).
		Return(nil)

	bc := testBlockClient(mockClient, testConfig())
	got, err := bc.BlockByNumber(nil)
	require.NoError(t, err)
	assert.Empty(t, got.Transactions)
	assert.Empty(t, got.Withdrawals)
}

func TestBlockClient_BlockByNumber_NotFound(t *testing.T) {
	mockClient := internalmocks.NewRPCClient(t)
	mockClient.On("CallContext", mock.Anything, mock.Anything, "eth_getBlockByNumber", "0x1", true).Return(nil)

	bc := testBlockClient(mockClient, testConfig())
	_, err := bc.BlockByNumber(big.NewInt(1))
	assert.ErrorIs(t, err, ethereum.NotFound)
}

func TestBlockClient_BlockByNumber_Errors(t *testing.T) {
	// RPC failure
	mockClient := internalmocks.NewRPCClient(t)
	mockClient.On("CallContext", mock.Anything, mock.Anything, "eth_getBlockByNumber", "0x1", true).
		Return(errors.New("connection refused"))
	bc := testBlockClient(mockClient, testConfig())
	_, err := bc.BlockByNumber(big.NewInt(1))
	assert.ErrorContains(t, err, "connection refused")

	// Conversion failure
	block := testBlock()
	block.Miner = nil
	mockClient = internalmocks.NewRPCClient(t)
	mockClient.On("CallContext", mock.Anything, mock.Anything, "eth_getBlockByNumber", "0x1", true).
		Run(returnBlock(block)).
		Return(nil)
	bc.client = mockClient
	_, err = bc.BlockByNumber(big.NewInt(1))
	assert.ErrorIs(t, err, primitives.ErrMissingField)
}

func TestBlockClient_BlockByNumber_SkipPolicy(t *testing.T) {
	bad := testLegacyTx()
	bad.GasPrice = nil
	block := testBlock()
	block.Transactions = rawTransactions(t, bad, testLegacyTx())

	mockClient := internalmocks.NewRPCClient(t)
	mockClient.On("CallContext", mock.Anything, mock.Anything, "eth_getBlockByNumber", "0x1", true).
		Run(returnBlock(block)).
		Return(nil)

	cfg := testConfig()
	cfg.policy = PolicySkip
	bc := testBlockClient(mockClient, cfg)
	got, err := bc.BlockByNumber(big.NewInt(1))
	require.NoError(t, err)
	assert.Len(t, got.Transactions, 1)
}

func TestBlockClient_ChainID(t *testing.T) {
	mockClient := internalmocks.NewRPCClient(t)
	mockClient.On("CallContext", mock.Anything, mock.Anything, "eth_chainId").
		Run(func(args mock.Arguments) {
			out := args.Get(1).(*hexutil.U256)
			*out = u256(1)
		}).
		Return(nil)

	bc := testBlockClient(mockClient, testConfig())
	id, err := bc.ChainID()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
	assert.NoError(t, bc.verifyChainID())
}

func TestBlockClient_VerifyChainID_Mismatch(t *testing.T) {
	mockClient := internalmocks.NewRPCClient(t)
	mockClient.On("CallContext", mock.Anything, mock.Anything, "eth_chainId").
		Run(func(args mock.Arguments) {
			out := args.Get(1).(*hexutil.U256)
			*out = u256(8453)
		}).
		Return(nil)

	bc := testBlockClient(mockClient, testConfig())
	assert.EqualError(t, bc.verifyChainID(), "expected chain ID 1, got 8453")
}

func TestBlockClient_VerifyChainID_Disabled(t *testing.T) {
	mockClient := internalmocks.NewRPCClient(t)
	cfg := testConfig()
	cfg.chainId = 0

	bc := testBlockClient(mockClient, cfg)
	assert.NoError(t, bc.verifyChainID())
	mockClient.AssertNotCalled(t, "CallContext", mock.Anything, mock.Anything, "eth_chainId")
}

func TestBlockClient_Close(t *testing.T) {
	mockClient := internalmocks.NewRPCClient(t)
	mockClient.On("Close").Return()

	bc := testBlockClient(mockClient, testConfig())
	bc.Close()
}

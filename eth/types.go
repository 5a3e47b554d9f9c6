package eth

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrTransactionHashesOnly is returned when a block was fetched without full
// transaction objects.
var ErrTransactionHashesOnly = errors.New("block carries transaction hashes only")

// ErrNullElement is returned for a transaction or withdrawal given as JSON null.
var ErrNullElement = errors.New("null element")

// RPCBlock is a block as returned by eth_getBlockByNumber. Fields that older
// or pending blocks may lack are pointers.
type RPCBlock struct {
	Hash             *common.Hash      `json:"hash"`
	ParentHash       common.Hash       `json:"parentHash"`
	UncleHash        common.Hash       `json:"sha3Uncles"`
	Miner            *common.Address   `json:"miner"`
	StateRoot        common.Hash       `json:"stateRoot"`
	TransactionsRoot common.Hash       `json:"transactionsRoot"`
	ReceiptsRoot     common.Hash       `json:"receiptsRoot"`
	LogsBloom        *types.Bloom      `json:"logsBloom"`
	Difficulty       hexutil.U256      `json:"difficulty"`
	Number           *hexutil.U256     `json:"number"`
	GasLimit         hexutil.U256      `json:"gasLimit"`
	GasUsed          hexutil.U256      `json:"gasUsed"`
	Timestamp        hexutil.U256      `json:"timestamp"`
	ExtraData        hexutil.Bytes     `json:"extraData"`
	MixHash          *common.Hash      `json:"mixHash"`
	Nonce            *types.BlockNonce `json:"nonce"`
	BaseFeePerGas    *hexutil.U256     `json:"baseFeePerGas"`
	WithdrawalsRoot  *common.Hash      `json:"withdrawalsRoot"`

	// Either hashes or full objects, depending on how the block was requested.
	Transactions []json.RawMessage `json:"transactions"`
	Withdrawals  []*RPCWithdrawal  `json:"withdrawals,omitempty"`
}

// FullTransactions decodes the transaction objects of the block. A null
// element is kept as a nil entry so the caller can report it by index.
func (b *RPCBlock) FullTransactions() ([]*RPCTransaction, error) {
	txs := make([]*RPCTransaction, 0, len(b.Transactions))
	for _, raw := range b.Transactions {
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '"' {
			return nil, ErrTransactionHashesOnly
		}
		if bytes.Equal(raw, []byte("null")) {
			txs = append(txs, nil)
			continue
		}
		tx := new(RPCTransaction)
		if err := json.Unmarshal(raw, tx); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// RPCTransaction is a transaction object in JSON-RPC form. Type is nil for
// nodes that predate typed transactions.
type RPCTransaction struct {
	Hash                 common.Hash       `json:"hash"`
	From                 common.Address    `json:"from"`
	Type                 *hexutil.Uint64   `json:"type"`
	ChainID              *hexutil.U256     `json:"chainId,omitempty"`
	Nonce                hexutil.U256      `json:"nonce"`
	GasPrice             *hexutil.U256     `json:"gasPrice"`
	MaxPriorityFeePerGas *hexutil.U256     `json:"maxPriorityFeePerGas,omitempty"`
	MaxFeePerGas         *hexutil.U256     `json:"maxFeePerGas,omitempty"`
	Gas                  hexutil.U256      `json:"gas"`
	To                   *common.Address   `json:"to"`
	Value                hexutil.U256      `json:"value"`
	Input                hexutil.Bytes     `json:"input"`
	AccessList           *types.AccessList `json:"accessList,omitempty"`
	V                    hexutil.U256      `json:"v"`
	R                    hexutil.U256      `json:"r"`
	S                    hexutil.U256      `json:"s"`
}

// RPCWithdrawal is a beacon withdrawal in JSON-RPC form.
type RPCWithdrawal struct {
	Index          hexutil.Uint64 `json:"index"`
	ValidatorIndex hexutil.Uint64 `json:"validatorIndex"`
	Address        common.Address `json:"address"`
	Amount         hexutil.U256   `json:"amount"`
}

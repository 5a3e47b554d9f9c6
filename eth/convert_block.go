package eth

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/nando-os/ghost-primitives/primitives"
)

// BatchPolicy decides what happens to a block when one of its transactions
// or withdrawals fails to convert.
type BatchPolicy int

const (
	// PolicyAbort fails the whole block on the first bad element.
	PolicyAbort BatchPolicy = iota
	// PolicySkip logs and drops bad elements.
	PolicySkip
)

func (p BatchPolicy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicySkip:
		return "skip"
	default:
		return fmt.Sprintf("BatchPolicy(%d)", int(p))
	}
}

// ParseBatchPolicy parses "abort" or "skip"; the empty string means abort.
func ParseBatchPolicy(s string) (BatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	default:
		return PolicyAbort, fmt.Errorf("unknown batch policy %q", s)
	}
}

// ConvertHeader builds the canonical header of a block. Fields optional on
// the wire but mandatory post-London are checked in order, and the first
// absent one is reported.
func ConvertHeader(block *RPCBlock) (*primitives.Header, error) {
	if block.Miner == nil {
		return nil, &primitives.MissingFieldError{Field: "author"}
	}
	if block.LogsBloom == nil {
		return nil, &primitives.MissingFieldError{Field: "logs_bloom"}
	}
	if block.Number == nil {
		return nil, &primitives.MissingFieldError{Field: "number"}
	}
	number, err := narrow("number", block.Number)
	if err != nil {
		return nil, err
	}
	if block.MixHash == nil {
		return nil, &primitives.MissingFieldError{Field: "mix_hash"}
	}
	if block.Nonce == nil {
		return nil, &primitives.MissingFieldError{Field: "nonce"}
	}
	if block.BaseFeePerGas == nil {
		return nil, &primitives.MissingFieldError{Field: "base_fee_per_gas"}
	}

	var withdrawalsRoot *primitives.B256
	if block.WithdrawalsRoot != nil {
		root := FromHash(*block.WithdrawalsRoot)
		withdrawalsRoot = &root
	}

	return &primitives.Header{
		ParentHash:       FromHash(block.ParentHash),
		OmmersHash:       FromHash(block.UncleHash),
		Beneficiary:      FromAddress(*block.Miner),
		StateRoot:        FromHash(block.StateRoot),
		TransactionsRoot: FromHash(block.TransactionsRoot),
		ReceiptsRoot:     FromHash(block.ReceiptsRoot),
		LogsBloom:        FromBloom(*block.LogsBloom),
		Difficulty:       FromU256(block.Difficulty),
		Number:           number,
		GasLimit:         FromU256(block.GasLimit),
		GasUsed:          FromU256(block.GasUsed),
		Timestamp:        FromU256(block.Timestamp),
		ExtraData:        common.CopyBytes(block.ExtraData),
		MixHash:          FromHash(*block.MixHash),
		Nonce:            FromNonce(*block.Nonce),
		BaseFeePerGas:    FromU256(*block.BaseFeePerGas),
		WithdrawalsRoot:  withdrawalsRoot,
	}, nil
}

// ConvertWithdrawal builds a canonical withdrawal. Amount is in gwei and must
// fit 64 bits.
func ConvertWithdrawal(w *RPCWithdrawal) (*primitives.Withdrawal, error) {
	if w == nil {
		return nil, ErrNullElement
	}
	index, err := narrowUint64("index", w.Index)
	if err != nil {
		return nil, err
	}
	validatorIndex, err := narrowUint64("validator_index", w.ValidatorIndex)
	if err != nil {
		return nil, err
	}
	amount, err := narrow("amount", &w.Amount)
	if err != nil {
		return nil, err
	}
	return &primitives.Withdrawal{
		Index:          index,
		ValidatorIndex: validatorIndex,
		Address:        FromAddress(w.Address),
		Amount:         amount,
	}, nil
}

// ConvertBlock converts the header, transactions and withdrawals of a block
// fetched with full transaction objects. A header failure always aborts;
// element failures are handled according to policy.
func ConvertBlock(block *RPCBlock, policy BatchPolicy) (*primitives.Block, error) {
	header, err := ConvertHeader(block)
	if err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}
	rpcTxs, err := block.FullTransactions()
	if err != nil {
		return nil, err
	}

	txs := make([]primitives.Transaction, 0, len(rpcTxs))
	for i, rpcTx := range rpcTxs {
		tx, err := convertScreened(rpcTx)
		if err != nil {
			if policy == PolicyAbort {
				return nil, fmt.Errorf("invalid transaction %d (%s): %w", i, txHash(rpcTx), err)
			}
			log.Warn("Skipping transaction", "block", header.Number, "index", i, "hash", txHash(rpcTx), "error", err)
			continue
		}
		txs = append(txs, *tx)
	}

	withdrawals := make([]primitives.Withdrawal, 0, len(block.Withdrawals))
	for i, rpcW := range block.Withdrawals {
		w, err := ConvertWithdrawal(rpcW)
		if err != nil {
			if policy == PolicyAbort {
				return nil, fmt.Errorf("invalid withdrawal %d: %w", i, err)
			}
			log.Warn("Skipping withdrawal", "block", header.Number, "index", i, "error", err)
			continue
		}
		withdrawals = append(withdrawals, *w)
	}

	return &primitives.Block{
		Header:       *header,
		Transactions: txs,
		Withdrawals:  withdrawals,
	}, nil
}

// convertScreened rejects unknown discriminants before they reach
// ConvertEssence, which would panic on them.
func convertScreened(tx *RPCTransaction) (*primitives.Transaction, error) {
	if tx == nil {
		return nil, ErrNullElement
	}
	if err := SupportedTxType(tx); err != nil {
		return nil, err
	}
	return ConvertTransaction(tx)
}

func txHash(tx *RPCTransaction) string {
	if tx == nil {
		return "null"
	}
	return tx.Hash.Hex()
}

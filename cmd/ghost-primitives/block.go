package main

import (
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/nando-os/ghost-primitives/eth"
	"github.com/nando-os/ghost-primitives/primitives"
)

func blockCommand(ctx *cli.Context) error {
	cfg, file, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out := newOutput(ctx, file.Log)

	number, err := parseBlockNumber(ctx.String(numberFlag.Name))
	if err != nil {
		return err
	}

	client, err := eth.NewBlockClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	block, err := client.BlockByNumber(number)
	if err != nil {
		return err
	}

	h := block.Header
	fields := logrus.Fields{
		"number":      h.Number,
		"beneficiary": h.Beneficiary.Hex(),
		"state_root":  h.StateRoot.Hex(),
		"gas_used":    h.GasUsed.Dec(),
		"gas_limit":   h.GasLimit.Dec(),
		"base_fee":    h.BaseFeePerGas.Dec(),
		"timestamp":   h.Timestamp.Dec(),
		"txs":         len(block.Transactions),
		"withdrawals": len(block.Withdrawals),
	}
	if h.WithdrawalsRoot != nil {
		fields["withdrawals_root"] = h.WithdrawalsRoot.Hex()
	}
	out.WithFields(fields).Info("Header")

	for i := range block.Transactions {
		tx := &block.Transactions[i]
		out.WithFields(essenceFields(tx.Essence)).
			WithField("index", i).
			WithField("kind", tx.Kind().String()).
			Info("Transaction")
	}
	for _, w := range block.Withdrawals {
		out.WithFields(logrus.Fields{
			"index":     w.Index,
			"validator": w.ValidatorIndex,
			"address":   w.Address.Hex(),
			"gwei":      w.Amount,
		}).Info("Withdrawal")
	}
	return nil
}

func essenceFields(essence primitives.TxEssence) logrus.Fields {
	switch e := essence.(type) {
	case *primitives.TxEssenceLegacy:
		fields := logrus.Fields{"type": "legacy", "nonce": e.Nonce, "gas_price": e.GasPrice.Dec()}
		if e.ChainID != nil {
			fields["chain_id"] = *e.ChainID
		}
		return fields
	case *primitives.TxEssenceEip2930:
		return logrus.Fields{
			"type":         "eip2930",
			"chain_id":     e.ChainID,
			"nonce":        e.Nonce,
			"gas_price":    e.GasPrice.Dec(),
			"access_items": len(e.AccessList),
		}
	case *primitives.TxEssenceEip1559:
		return logrus.Fields{
			"type":         "eip1559",
			"chain_id":     e.ChainID,
			"nonce":        e.Nonce,
			"max_fee":      e.MaxFeePerGas.Dec(),
			"priority_fee": e.MaxPriorityFeePerGas.Dec(),
			"access_items": len(e.AccessList),
		}
	default:
		return logrus.Fields{"type": fmt.Sprintf("%T", essence)}
	}
}

// parseBlockNumber returns nil for latest.
func parseBlockNumber(s string) (*big.Int, error) {
	if s == "" || s == "latest" {
		return nil, nil
	}
	n, ok := new(big.Int).SetString(s, 0)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid block number %q", s)
	}
	return n, nil
}

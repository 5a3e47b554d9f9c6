package primitives

// Header is the canonical block header of a post-London block.
// WithdrawalsRoot is only set from Shanghai on.
type Header struct {
	ParentHash       B256
	OmmersHash       B256
	Beneficiary      B160
	StateRoot        B256
	TransactionsRoot B256
	ReceiptsRoot     B256
	LogsBloom        Bloom
	Difficulty       U256
	Number           uint64
	GasLimit         U256
	GasUsed          U256
	Timestamp        U256
	ExtraData        []byte
	MixHash          B256
	Nonce            B64
	BaseFeePerGas    U256
	WithdrawalsRoot  *B256
}

// Block bundles a canonical header with its converted body.
type Block struct {
	Header       Header
	Transactions []Transaction
	Withdrawals  []Withdrawal
}

package primitives

// Withdrawal is a beacon chain balance credit to an execution layer account.
// Amount is denominated in gwei.
type Withdrawal struct {
	Index          uint64
	ValidatorIndex uint64
	Address        B160
	Amount         uint64
}

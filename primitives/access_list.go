package primitives

// AccessListItem is an address together with the storage keys a transaction
// declares it will touch there.
type AccessListItem struct {
	Address     B160
	StorageKeys []B256
}

// AccessList is an ordered list of AccessListItem. Order is significant.
type AccessList []AccessListItem

// StorageKeys returns the total number of storage keys in the list.
func (al AccessList) StorageKeys() int {
	sum := 0
	for _, item := range al {
		sum += len(item.StorageKeys)
	}
	return sum
}

package entities

// StorageRecord is one row of the key-value store: a unique string key and
// the encoded value stored under it.
type StorageRecord struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

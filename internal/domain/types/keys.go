package types

// KeyMeta describes a stored private key record. It is kept in clear beside the
// encrypted record so keys can be listed without a passphrase.
type KeyMeta struct {
	ID          KeyID       `json:"id"`
	Tier        int         `json:"tier"`
	Bits        int         `json:"bits"`
	Fingerprint Fingerprint `json:"fingerprint"`
	CreatedUTC  int64       `json:"created_utc"`
}

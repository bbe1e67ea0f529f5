package domain

import (
	interfaces "lilrsa/internal/domain/interfaces"
	types "lilrsa/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyID       = types.KeyID
	Fingerprint = types.Fingerprint
	KeyMeta     = types.KeyMeta
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PrimeSource = interfaces.PrimeSource
	KeyStore    = interfaces.KeyStore
)

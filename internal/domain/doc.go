// Package domain defines the data models and contracts shared across lilrsa.
// It contains plain types and interfaces only; the types and interfaces
// subpackages hold the definitions and this package re-exports them.
package domain

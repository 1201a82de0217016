// Package access holds the entitlement checks gating paid functionality.
// Every function is a pure boolean over a resolved subscription tier; the
// package never touches credentials, billing state, or I/O.
package access

import (
	"time"

	"github.com/laufblocks/laufblocks/pkg/registry"
)

// SubscriptionTier is a user's resolved access level. The empty string is
// treated as free: an unknown or missing subscription must never grant
// pro access.
type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPro  SubscriptionTier = "pro"
)

// SubscriptionStatus mirrors the payment provider's subscription state.
type SubscriptionStatus string

const (
	StatusActive     SubscriptionStatus = "active"
	StatusCanceled   SubscriptionStatus = "canceled"
	StatusPastDue    SubscriptionStatus = "past_due"
	StatusTrialing   SubscriptionStatus = "trialing"
	StatusIncomplete SubscriptionStatus = "incomplete"
)

// SubscriptionState is the external subscription entity as consumed here.
// Tier transitions arrive via billing webhooks outside this module; this
// package only ever reads the result.
type SubscriptionState struct {
	Tier              SubscriptionTier
	Status            SubscriptionStatus
	CancelAtPeriodEnd bool
	CurrentPeriodEnd  time.Time
}

// ExportFormat is a way of taking a block's source out of the product.
type ExportFormat string

const (
	ExportCopy ExportFormat = "copy"
	ExportZip  ExportFormat = "zip"
	ExportCLI  ExportFormat = "cli"
)

// CheckBlockAccess reports whether a user tier can use a block tier.
// Pro users access everything; free users access free blocks only.
func CheckBlockAccess(userTier SubscriptionTier, blockTier registry.Tier) bool {
	if userTier == TierPro {
		return true
	}
	return blockTier == registry.TierFree
}

// HasProAccess reports whether the tier is pro.
func HasProAccess(tier SubscriptionTier) bool {
	return tier == TierPro
}

// CanUseGenerator reports whether a user may run the site generator.
// Pro is unlimited; free gets exactly one use per month.
func CanUseGenerator(tier SubscriptionTier, usedThisMonth int) bool {
	if tier == TierPro {
		return true
	}
	return usedThisMonth < 1
}

// CanExportAs reports whether a tier may export in the given format.
// Copy/paste is always allowed; zip and CLI export are pro-only.
func CanExportAs(tier SubscriptionTier, format ExportFormat) bool {
	if format == ExportCopy {
		return true
	}
	return tier == TierPro
}

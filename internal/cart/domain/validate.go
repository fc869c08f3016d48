package domain

// ValidateQuantity enforces the item-quantity invariants. A negative
// availableStock means the stock was never observed and only the lower bound
// applies. The requested value is returned unchanged on success; callers must
// surface failures instead of clamping.
func ValidateQuantity(requested, availableStock int) (int, error) {
	if requested < 1 {
		return 0, &ValidationError{Reason: ReasonBelowMinimum}
	}
	if availableStock >= 0 && requested > availableStock {
		return 0, &ValidationError{Reason: ReasonExceedsStock}
	}
	return requested, nil
}

package loyalty

// PointsPerCurrencyUnit is the conversion constant: 100 points = 1 unit of
// currency. It applies both when computing a redemption discount and when
// displaying a balance's monetary value.
const PointsPerCurrencyUnit int64 = 100

// CentsPerCurrencyUnit keeps the cent arithmetic explicit instead of relying
// on the two constants happening to be equal.
const CentsPerCurrencyUnit int64 = 100

// RedemptionCap clamps a requested redemption to what the account and order
// can actually bear: min(requested, balance, payable total expressed in
// points). Requests above either limit are silently clamped, not rejected;
// the service is the sole authority for this formula.
func RedemptionCap(requestedPoints, balance, payableCents int64) int64 {
	cap := requestedPoints
	if balance < cap {
		cap = balance
	}
	if maxPoints := payableCents * PointsPerCurrencyUnit / CentsPerCurrencyUnit; maxPoints < cap {
		cap = maxPoints
	}
	if cap < 0 {
		return 0
	}
	return cap
}

// DiscountCents converts redeemed points into a checkout discount.
func DiscountCents(points int64) int64 {
	return points * CentsPerCurrencyUnit / PointsPerCurrencyUnit
}

// MonetaryValueCents is the display value of a balance.
func MonetaryValueCents(balance int64) int64 {
	if balance < 0 {
		return 0
	}
	return balance * CentsPerCurrencyUnit / PointsPerCurrencyUnit
}

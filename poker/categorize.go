package poker

// HoleCardCategory is a coarse starting-hand strength bucket.
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHoleCards buckets two starting cards:
// Premium is JJ+ or AK, Strong is TT, AQ or AJ, Medium is 77-99 or suited
// broadway, Weak is a small pair or a suited connector, anything else is Trash.
// Placeholders and invalid codes are Unknown.
func CategorizeHoleCards(a, b Card) HoleCardCategory {
	if !a.Valid() || !b.Valid() {
		return CategoryUnknown
	}
	lo, hi := a.Rank()+2, b.Rank()+2
	if lo > hi {
		lo, hi = hi, lo
	}
	pair := lo == hi
	suited := a.Suit() == b.Suit()

	switch {
	case pair && lo >= 11, lo == 13 && hi == 14:
		return CategoryPremium
	case pair && lo == 10, hi == 14 && (lo == 12 || lo == 11):
		return CategoryStrong
	case pair && lo >= 7, suited && lo >= 10:
		return CategoryMedium
	case pair, suited && hi-lo <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}

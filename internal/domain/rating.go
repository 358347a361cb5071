package domain

import "errors"

// ErrInvalidRating is returned for a rating outside the 1..5 star range.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// SubmitRating folds a user's star rating into an item's aggregate and
// returns the updated item. previousUserRating is the user's last rating
// for this item, or 0 if they have never rated it.
//
// A revision subtracts the user's previous contribution from the running
// total and folds in the new one without changing the count. Once a user
// has revised a rating more than once this is only an approximation of a
// true per-user mean; that matches the behavior the catalogs have always
// had, and callers depend on the exact arithmetic.
func SubmitRating(item Item, newRating, previousUserRating int) (Item, error) {
	if newRating < 1 || newRating > 5 {
		return Item{}, ErrInvalidRating
	}

	total := item.Rating * float64(item.RatingsCount)
	// A previous rating with a zero count can only come from an imported
	// ledger entry, which never folded into the aggregate; treat it as a
	// first-time rating rather than dividing by zero.
	if previousUserRating > 0 && item.RatingsCount > 0 {
		item.Rating = (total - float64(previousUserRating) + float64(newRating)) / float64(item.RatingsCount)
	} else {
		item.RatingsCount++
		item.Rating = (total + float64(newRating)) / float64(item.RatingsCount)
	}
	return item, nil
}

// Package entity contains the core business objects of the project.
package entity

// ListingStatus represents where a listing sits in the cart/checkout lifecycle.
type ListingStatus string

const (
	// StatusAvailable indicates the listing can be browsed and added to carts.
	StatusAvailable ListingStatus = "Available"
	// StatusCheckedOut indicates a buyer has started checkout for the listing.
	StatusCheckedOut ListingStatus = "Checked Out"
	// StatusSold indicates the listing has been sold.
	StatusSold ListingStatus = "Sold"
)

// String returns the string representation of the ListingStatus.
func (s ListingStatus) String() string {
	return string(s)
}

// IsValid checks if the ListingStatus is a valid value.
func (s ListingStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusCheckedOut, StatusSold:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the strict state machine allows moving to
// next. Same-status writes are always allowed (idempotent no-op). The strict
// graph is Available→Checked Out, Checked Out→Sold, Checked Out→Available;
// permissive mode bypasses this check entirely.
func (s ListingStatus) CanTransitionTo(next ListingStatus) bool {
	if s == next {
		return true
	}

	switch s {
	case StatusAvailable:
		return next == StatusCheckedOut
	case StatusCheckedOut:
		return next == StatusSold || next == StatusAvailable
	default:
		return false
	}
}

// ListingCondition represents the physical condition of a listed item.
type ListingCondition string

const (
	// ConditionBrandNew indicates an unused item.
	ConditionBrandNew ListingCondition = "Brand New"
	// ConditionMint indicates a used item in perfect condition.
	ConditionMint ListingCondition = "Mint"
	// ConditionGood indicates a used item in good condition.
	ConditionGood ListingCondition = "Good"
	// ConditionFair indicates a used item with visible wear.
	ConditionFair ListingCondition = "Fair"
	// ConditionPoor indicates a heavily worn item.
	ConditionPoor ListingCondition = "Poor"
)

// String returns the string representation of the ListingCondition.
func (c ListingCondition) String() string {
	return string(c)
}

// IsValid checks if the ListingCondition is a valid value.
func (c ListingCondition) IsValid() bool {
	switch c {
	case ConditionBrandNew, ConditionMint, ConditionGood, ConditionFair, ConditionPoor:
		return true
	default:
		return false
	}
}

// ListingCategory represents the fixed set of marketplace categories.
type ListingCategory string

const (
	// CategoryComics covers comic books and graphic novels.
	CategoryComics ListingCategory = "Comic Books & Graphic Novels"
	// CategoryToys covers toys and collectables.
	CategoryToys ListingCategory = "Toys & Collectables"
	// CategoryCostumes covers costumes.
	CategoryCostumes ListingCategory = "Costumes"
	// CategoryClothing covers clothing and apparel.
	CategoryClothing ListingCategory = "Clothing & Apparel"
)

// String returns the string representation of the ListingCategory.
func (c ListingCategory) String() string {
	return string(c)
}

// IsValid checks if the ListingCategory is a valid value.
func (c ListingCategory) IsValid() bool {
	switch c {
	case CategoryComics, CategoryToys, CategoryCostumes, CategoryClothing:
		return true
	default:
		return false
	}
}

// PostageType represents how a listing ships.
type PostageType string

const (
	// PostageNone indicates pickup only, no shipping.
	PostageNone PostageType = "None/Pickup Only"
	// PostageByWeight indicates shipping charged by weight.
	PostageByWeight PostageType = "By Weight"
)

// String returns the string representation of the PostageType.
func (p PostageType) String() string {
	return string(p)
}

// IsValid checks if the PostageType is a valid value.
func (p PostageType) IsValid() bool {
	switch p {
	case PostageNone, PostageByWeight:
		return true
	default:
		return false
	}
}

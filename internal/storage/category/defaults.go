package category

// Default category names used by the transfer flow.
const (
	OutgoingTransferName = "Outgoing transfer"
	IncomingTransferName = "Incoming transfer"
)

// DefaultSeed is one row of the seeded global category set.
type DefaultSeed struct {
	Name string
	Type Type
}

// DefaultChildSeed is a seeded child category attached to a parent by name.
type DefaultChildSeed struct {
	Name   string
	Parent string
}

// DefaultParents is the seeded set of top-level default categories.
func DefaultParents() []DefaultSeed {
	return []DefaultSeed{
		{Name: "Food & Beverage", Type: TypeExpense},
		{Name: "Bills & Utilities", Type: TypeExpense},
		{Name: "Transportation", Type: TypeExpense},
		{Name: "Shopping", Type: TypeExpense},
		{Name: "Family", Type: TypeExpense},
		{Name: "Health & Fitness", Type: TypeExpense},
		{Name: "Education", Type: TypeExpense},
		{Name: "Entertainment", Type: TypeExpense},
		{Name: "Gift & Donation", Type: TypeExpense},
		{Name: "Insurances", Type: TypeExpense},
		{Name: "Other expense", Type: TypeExpense},
		{Name: OutgoingTransferName, Type: TypeExpense},
		{Name: "Travel", Type: TypeExpense},
		{Name: "Salary", Type: TypeIncome},
		{Name: IncomingTransferName, Type: TypeIncome},
		{Name: "Collect interest", Type: TypeIncome},
		{Name: "Gifts", Type: TypeIncome},
		{Name: "Award", Type: TypeIncome},
		{Name: "Selling", Type: TypeIncome},
	}
}

// DefaultChildren is the seeded set of child default categories. Each child
// inherits its parent's type.
func DefaultChildren() []DefaultChildSeed {
	return []DefaultChildSeed{
		{Name: "Café", Parent: "Food & Beverage"},
		{Name: "Restaurant", Parent: "Food & Beverage"},
		{Name: "Bread and Noodles", Parent: "Food & Beverage"},
		{Name: "Phone bill", Parent: "Bills & Utilities"},
		{Name: "Television Bill", Parent: "Bills & Utilities"},
		{Name: "Internet Bill", Parent: "Bills & Utilities"},
		{Name: "Piggy bank", Parent: "Bills & Utilities"},
		{Name: "Vehicle maintenance", Parent: "Transportation"},
		{Name: "Parking fees", Parent: "Transportation"},
		{Name: "Petrol", Parent: "Transportation"},
		{Name: "Taxi", Parent: "Transportation"},
		{Name: "Electronic devices", Parent: "Shopping"},
		{Name: "Makeup", Parent: "Shopping"},
		{Name: "Clothing", Parent: "Shopping"},
		{Name: "Footwear", Parent: "Shopping"},
		{Name: "Apps", Parent: "Shopping"},
		{Name: "Fitness", Parent: "Health & Fitness"},
		{Name: "Doctor", Parent: "Health & Fitness"},
		{Name: "Personal care", Parent: "Health & Fitness"},
		{Name: "Pharmacy", Parent: "Health & Fitness"},
		{Name: "Sports", Parent: "Health & Fitness"},
		{Name: "Barber", Parent: "Health & Fitness"},
		{Name: "Books", Parent: "Education"},
		{Name: "Streaming service", Parent: "Entertainment"},
		{Name: "Games", Parent: "Entertainment"},
		{Name: "Movies", Parent: "Entertainment"},
		{Name: "Musics", Parent: "Entertainment"},
		{Name: "Friends & Lover", Parent: "Gift & Donation"},
		{Name: "Funeral", Parent: "Gift & Donation"},
		{Name: "Marriage", Parent: "Gift & Donation"},
		{Name: "Lucky money", Parent: "Gift & Donation"},
		{Name: "Hotel", Parent: "Travel"},
	}
}

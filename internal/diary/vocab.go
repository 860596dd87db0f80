package diary

// Triggers is the fixed vocabulary of leak/urination triggers.
var Triggers = []string{
	"Caffeine",
	"Exercise",
	"Sneezing",
	"Coughing",
	"Laughing",
	"Standing up",
	"Running",
	"Other",
}

// ValidTrigger reports whether t is in the trigger vocabulary.
func ValidTrigger(t string) bool {
	for _, known := range Triggers {
		if t == known {
			return true
		}
	}
	return false
}

// DrinkTypes is the fixed vocabulary of drinks, in display order.
var DrinkTypes = []string{
	"Water",
	"Coffee",
	"Tea",
	"Juice",
	"Soda",
	"Alcohol",
	"Milk",
}

// drinkCaffeine maps each drink type to whether it contains caffeine.
// The caffeine flag on a fluid event is always derived from this table,
// never taken from caller input.
var drinkCaffeine = map[string]bool{
	"Water":   false,
	"Coffee":  true,
	"Tea":     true,
	"Juice":   false,
	"Soda":    true,
	"Alcohol": false,
	"Milk":    false,
}

// ValidDrinkType reports whether d is in the drink vocabulary.
func ValidDrinkType(d string) bool {
	_, ok := drinkCaffeine[d]
	return ok
}

// CaffeineFor returns the derived caffeine flag for a drink type.
// Unknown drinks are treated as caffeine-free.
func CaffeineFor(drink string) bool {
	return drinkCaffeine[drink]
}

package entities

// DefaultGuaranteeDays applies to new records.
const DefaultGuaranteeDays = 30

// GuaranteeOptions is the closed set of warranty periods offered at the counter.
var GuaranteeOptions = []int{0, 30, 60, 90}

func IsValidGuarantee(days int) bool {
	for _, d := range GuaranteeOptions {
		if d == days {
			return true
		}
	}
	return false
}

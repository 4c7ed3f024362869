package fundfolio

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, DefaultCurrency) }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// on is a helper for test to create a date from its ISO form
func on(s string) Date { return MustParse(s) }

// nav is a helper for test to create a value point from consts
func nav(date string, v float64) NAVPoint { return NAVPoint{Date: on(date), NAV: INR(v)} }

// leg is a helper for test to create a scheme record leg from consts
func leg(date string, units, price float64) Leg {
	return Leg{Date: on(date), Units: Q(units), Price: newDecimal(price)}
}

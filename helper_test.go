package finplan

// INR is a helper for tests to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// NO is a helper for tests to create money with no currency set
func NO(v float64) Money { return M(v, "") }

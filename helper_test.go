package beanreport

// EUR is a helper for tests to create euro amounts from consts.
func EUR(v float64) Amount { return M(v, "EUR") }

// USD is a helper for tests to create US dollar amounts from consts.
func USD(v float64) Amount { return M(v, "USD") }

// BOOG is a helper for tests to create amounts of a fictional commodity.
func BOOG(v float64) Amount { return M(v, "BOOG") }

// tx is a helper for tests to build a transaction from postings.
func tx(postings ...Posting) Transaction {
	return Transaction{Postings: postings}
}

// post is a helper for tests to build a plain posting.
func post(account Account, amount Amount) Posting {
	return Posting{Account: account, Amount: amount}
}

// postAtCost is a helper for tests to build a posting with a per-unit cost.
func postAtCost(account Account, amount Amount, cost Amount) Posting {
	return Posting{Account: account, Amount: amount, Cost: &cost}
}

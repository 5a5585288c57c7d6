// Package lessons holds the fixed in-app lesson catalog and the matcher
// that cross-links AI-generated content to it.
package lessons

// Lesson is one entry of the static catalog. Keywords are ordered;
// catalog order is the tie-break when two lessons score equally.
type Lesson struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
}

// Catalog is the closed set of 7 lessons. Never mutated at runtime;
// enrichment never produces an id outside this list.
var Catalog = []Lesson{
	{ID: 1, Title: "Money Basics", Keywords: []string{"money", "currency", "basics", "fundamentals", "cash", "dollar"}},
	{ID: 2, Title: "Earning vs. Spending", Keywords: []string{"income", "expenses", "spending", "earning", "salary", "wages", "paycheck"}},
	{ID: 3, Title: "The Power of Saving", Keywords: []string{"saving", "savings", "emergency fund", "piggy bank", "save", "accumulate"}},
	{ID: 4, Title: "Setting Financial Goals", Keywords: []string{"goals", "planning", "targets", "objectives", "milestones", "achieve"}},
	{ID: 5, Title: "Budgeting Like a Pro", Keywords: []string{"budget", "budgeting", "planning", "allocation", "expenses", "spending plan"}},
	{ID: 6, Title: "Understanding Credit", Keywords: []string{"credit", "loans", "debt", "credit score", "borrowing", "interest rate", "apr"}},
	{ID: 7, Title: "Investing Basics", Keywords: []string{"investing", "stocks", "bonds", "markets", "portfolio", "dividends", "returns", "etf", "mutual fund"}},
}

package services

import (
	"strings"

	"group-ledger/internal/models"
)

// fuzzyThreshold is the minimum similarity for a misspelled word to match a keyword
const fuzzyThreshold = 0.8

type keywordPattern struct {
	keywords  []string
	category  string
	entryType string // empty matches both income and expense
}

// Categorizer assigns a category from the description keywords. Exact word
// matches win; otherwise the closest keyword above fuzzyThreshold is used.
type Categorizer struct {
	patterns []keywordPattern
}

func NewCategorizer() CategorizerInterface {
	return &Categorizer{patterns: initKeywordPatterns()}
}

// Suggest returns the best category for description, or a per-type fallback.
func (c *Categorizer) Suggest(entryType, description string) string {
	words := tokenize(description)

	var (
		bestCategory string
		bestScore    float64
	)
	for _, pattern := range c.patterns {
		if pattern.entryType != "" && pattern.entryType != entryType {
			continue
		}
		for _, keyword := range pattern.keywords {
			for _, word := range words {
				score := calculateSimilarity(word, keyword)
				if score == 1.0 {
					return pattern.category
				}
				if score >= fuzzyThreshold && score > bestScore {
					bestScore = score
					bestCategory = pattern.category
				}
			}
		}
	}

	if bestCategory != "" {
		return bestCategory
	}
	if entryType == models.EntryTypeIncome {
		return models.CategoryInvoice
	}
	return models.CategoryOther
}

func initKeywordPatterns() []keywordPattern {
	return []keywordPattern{
		{keywords: []string{"salary", "payroll", "paycheck", "wage", "wages"}, category: models.CategorySalary, entryType: models.EntryTypeIncome},
		{keywords: []string{"invoice", "retainer", "consulting", "fee"}, category: models.CategoryInvoice, entryType: models.EntryTypeIncome},
		{keywords: []string{"refund", "reimbursement", "cashback"}, category: models.CategoryRefund},
		{keywords: []string{"rent", "lease", "landlord", "mortgage"}, category: models.CategoryRent, entryType: models.EntryTypeExpense},
		{keywords: []string{"electricity", "water", "gas", "internet", "heating", "utilities"}, category: models.CategoryUtilities, entryType: models.EntryTypeExpense},
		{keywords: []string{"groceries", "grocery", "supermarket", "market"}, category: models.CategoryGroceries, entryType: models.EntryTypeExpense},
		{keywords: []string{"restaurant", "dinner", "lunch", "breakfast", "pizza", "cafe", "coffee"}, category: models.CategoryDining, entryType: models.EntryTypeExpense},
		{keywords: []string{"taxi", "uber", "fuel", "parking", "train", "bus", "metro"}, category: models.CategoryTransport, entryType: models.EntryTypeExpense},
		{keywords: []string{"hotel", "flight", "airbnb", "booking", "vacation"}, category: models.CategoryTravel, entryType: models.EntryTypeExpense},
		{keywords: []string{"netflix", "spotify", "subscription", "membership", "license"}, category: models.CategorySubscriptions, entryType: models.EntryTypeExpense},
		{keywords: []string{"insurance", "premium"}, category: models.CategoryInsurance, entryType: models.EntryTypeExpense},
		{keywords: []string{"tax", "vat", "irs"}, category: models.CategoryTaxes, entryType: models.EntryTypeExpense},
		{keywords: []string{"office", "supplies", "stationery", "printer", "hardware"}, category: models.CategorySupplies, entryType: models.EntryTypeExpense},
	}
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

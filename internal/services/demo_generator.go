package services

import (
	"sort"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxDemoTransactions = 1000
	salaryDay           = 25
	rentDay             = 1
)

type demoExpense struct {
	category string
	min, max float64
}

var demoExpenses = []demoExpense{
	{models.CategoryGroceries, 15, 180},
	{models.CategoryDining, 8, 90},
	{models.CategoryTransport, 3, 60},
	{models.CategoryUtilities, 40, 220},
	{models.CategorySubscriptions, 5, 25},
	{models.CategorySupplies, 10, 300},
	{models.CategoryTravel, 80, 900},
}

type demoGenerator struct {
	faker *gofakeit.Faker
}

// NewDemoDataGenerator creates a generator. A zero seed draws a random one.
func NewDemoDataGenerator(seed uint64) DemoDataGeneratorInterface {
	return &demoGenerator{faker: gofakeit.New(seed)}
}

// Generate returns count entries between startDate and endDate, oldest first:
// a monthly salary and rent for the first member plus random shared expenses
// split evenly between members.
func (g *demoGenerator) Generate(members []uuid.UUID, startDate, endDate time.Time, count int) []dto.CreateTransactionRequest {
	if count <= 0 || len(members) == 0 || !endDate.After(startDate) {
		return []dto.CreateTransactionRequest{}
	}
	if count > maxDemoTransactions {
		count = maxDemoTransactions
	}

	entries := g.monthlyEntries(members[0], startDate, endDate)
	if len(entries) > count {
		entries = entries[:count]
	}
	for len(entries) < count {
		entries = append(entries, g.sharedExpense(members, startDate, endDate))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(*entries[j].Date)
	})
	return entries
}

func (g *demoGenerator) monthlyEntries(owner uuid.UUID, startDate, endDate time.Time) []dto.CreateTransactionRequest {
	var entries []dto.CreateTransactionRequest
	salary := decimal.NewFromFloat(g.faker.Price(2500, 6000)).Round(2)
	rent := decimal.NewFromFloat(g.faker.Price(700, 2000)).Round(2)
	employer := g.faker.Company()

	month := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(endDate) {
		if day := month.AddDate(0, 0, rentDay-1); inRange(day, startDate, endDate) {
			entries = append(entries, soloEntry(owner, rent, models.EntryTypeExpense, models.CategoryRent, "Monthly rent", day))
		}
		if day := month.AddDate(0, 0, salaryDay-1); inRange(day, startDate, endDate) {
			entries = append(entries, soloEntry(owner, salary, models.EntryTypeIncome, models.CategorySalary, "Salary from "+employer, day))
		}
		month = month.AddDate(0, 1, 0)
	}
	return entries
}

func (g *demoGenerator) sharedExpense(members []uuid.UUID, startDate, endDate time.Time) dto.CreateTransactionRequest {
	kind := demoExpenses[g.faker.Number(0, len(demoExpenses)-1)]
	amount := decimal.NewFromFloat(g.faker.Price(kind.min, kind.max)).Round(2)
	date := g.faker.DateRange(startDate, endDate).UTC()

	return dto.CreateTransactionRequest{
		Amount:       amount,
		Type:         models.EntryTypeExpense,
		Category:     kind.category,
		Description:  g.faker.Company() + " - " + g.faker.Sentence(3),
		Date:         &date,
		Participants: EvenSplit(amount, members),
	}
}

// EvenSplit divides amount between users in cents; the first users absorb
// the remainder so the shares always add up exactly.
func EvenSplit(amount decimal.Decimal, users []uuid.UUID) []dto.ParticipantRequest {
	if len(users) == 0 {
		return nil
	}
	cents := amount.Shift(2).IntPart()
	n := int64(len(users))
	base, remainder := cents/n, cents%n

	out := make([]dto.ParticipantRequest, 0, len(users))
	for i, u := range users {
		share := base
		if int64(i) < remainder {
			share++
		}
		out = append(out, dto.ParticipantRequest{UserID: u, Share: decimal.New(share, -2)})
	}
	return out
}

func soloEntry(user uuid.UUID, amount decimal.Decimal, entryType, category, description string, date time.Time) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Amount:       amount,
		Type:         entryType,
		Category:     category,
		Description:  description,
		Date:         &date,
		Participants: []dto.ParticipantRequest{{UserID: user, Share: amount}},
	}
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

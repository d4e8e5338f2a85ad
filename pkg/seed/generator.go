package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
)

// DefaultLeadCount is the number of leads generated at startup.
const DefaultLeadCount = 50

var (
	firstNames = []string{"Aarav", "Ananya", "Vihaan", "Diya", "Arjun", "Isha", "Kabir", "Meera", "Rohan", "Saanvi", "Aditya", "Priya"}
	lastNames  = []string{"Sharma", "Verma", "Gupta", "Singh", "Patel", "Agarwal", "Mishra", "Khan", "Yadav", "Saxena"}
	courses    = []string{"B.Tech CSE", "B.Tech AI & ML", "MBA", "BBA", "B.Pharm", "LLB", "BA LLB", "B.Sc Agriculture", "BCA", "MCA", "Distance MBA"}
	actions    = []string{"Send AI Email", "Schedule Demo", "Call Lead", "Send Case Study", "Connect on LinkedIn"}
)

// Generator produces pseudo-random leads from fixed name, course and source pools.
type Generator struct {
	faker *gofakeit.Faker
	users []models.User
}

// NewGenerator creates a generator. A zero seed draws a random seed, any
// other value makes the output reproducible.
func NewGenerator(seed int64, users []models.User) *Generator {
	if len(users) == 0 {
		users = Users()
	}
	return &Generator{
		faker: gofakeit.New(seed),
		users: users,
	}
}

// Leads generates n leads with ids l0..l(n-1), timestamped relative to now.
func (g *Generator) Leads(n int, now time.Time) []models.Lead {
	stages := models.AllDealStages()
	sources := models.AllLeadSources()
	today := now.Format(time.DateOnly)

	leads := make([]models.Lead, 0, n)
	for i := 0; i < n; i++ {
		first := g.pick(firstNames)
		last := g.pick(lastNames)
		score := g.faker.IntRange(0, 99)

		var followUp *string
		if g.faker.Bool() {
			d := today
			followUp = &d
		}

		tags := []string{"Nurture"}
		if g.faker.Bool() {
			tags = []string{"High Intent"}
		}

		leads = append(leads, models.Lead{
			ID:              fmt.Sprintf("l%d", i),
			Name:            first + " " + last,
			Company:         g.pick(courses),
			Email:           fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
			Phone:           fmt.Sprintf("+1 555 010 %03d", i),
			Source:          sources[g.faker.IntRange(0, len(sources)-1)],
			Tags:            tags,
			Score:           score,
			AIScore:         aiScore(score, g.faker.Float64Range(0.8, 1.2)),
			PredictedLTV:    g.faker.IntRange(5000, 54999),
			NextBestAction:  g.pick(actions),
			OwnerID:         g.users[g.faker.IntRange(0, len(g.users)-1)].ID,
			CreatedAt:       now.AddDate(0, 0, -g.faker.IntRange(0, 29)),
			LastInteraction: now.AddDate(0, 0, -g.faker.IntRange(0, 4)),
			Status:          models.StatusOpportunity,
			DealValue:       g.faker.IntRange(1000, 10999),
			Stage:           stages[g.faker.IntRange(0, len(stages)-1)],
			Priority:        g.priority(),
			NextFollowUp:    followUp,
		})
	}
	return leads
}

func (g *Generator) pick(pool []string) string {
	return pool[g.faker.IntRange(0, len(pool)-1)]
}

func (g *Generator) priority() models.Priority {
	switch r := g.faker.Float64(); {
	case r > 0.7:
		return models.PriorityHigh
	case r > 0.4:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// aiScore correlates the predicted score with the manual one, clamped to [0,100].
func aiScore(score int, factor float64) int {
	v := int(float64(score) * factor)
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

// Default returns the startup data set with leadCount generated leads and
// u1 as the current user.
func Default(now time.Time, seed int64, leadCount int) store.Data {
	users := Users()
	return store.Data{
		Users:         users,
		Leads:         NewGenerator(seed, users).Leads(leadCount, now),
		Campaigns:     Campaigns(),
		Feeds:         Feeds(now),
		CurrentUserID: users[0].ID,
	}
}

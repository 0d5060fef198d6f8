// Package export renders downloadable reports from store snapshots. It only
// consumes List() and Stats() outputs plus a generation timestamp; it never
// reaches back into the stores.
package export

import (
	"fmt"
	"time"

	"github.com/propertypal/pms-backend/models"
)

type Kind string

const (
	KindLeads      Kind = "leads"
	KindProperties Kind = "properties"
	KindAll        Kind = "all"
)

// ParseKind maps the ?type= query value; empty means everything.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLeads, KindProperties, KindAll:
		return Kind(s), nil
	case "":
		return KindAll, nil
	}
	return "", fmt.Errorf("unknown report type %q", s)
}

func (k Kind) includeLeads() bool      { return k == KindLeads || k == KindAll }
func (k Kind) includeProperties() bool { return k == KindProperties || k == KindAll }

// Snapshot is the immutable input to a report: records and already-computed
// counts as they stood at GeneratedAt.
type Snapshot struct {
	GeneratedAt   time.Time
	Leads         []models.Lead
	LeadStats     models.LeadStats
	Properties    []models.Property
	PropertyStats models.PropertyStats
}

func formatPrice(p models.Property) string {
	switch p.PriceUnit {
	case models.PriceMonthly:
		return fmt.Sprintf("$%.0f/month", p.Price)
	case models.PriceYearly:
		return fmt.Sprintf("$%.0f/year", p.Price)
	default:
		return fmt.Sprintf("$%.0f", p.Price)
	}
}

func orNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

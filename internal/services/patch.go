package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// changeSet collects the fields of a patch whose value differs from the
// stored record.
type changeSet map[string]any

func setIfChanged[V comparable](c changeSet, field string, next *V, cur V) {
	if next != nil && *next != cur {
		c[field] = *next
	}
}

func setDecimalIfChanged(c changeSet, field string, next *decimal.Decimal, cur decimal.Decimal) {
	if next != nil && !next.Equal(cur) {
		c[field] = *next
	}
}

// patchChecker accumulates invalid patch fields.
type patchChecker struct {
	bad []string
}

func (p *patchChecker) notBlank(field string, v *string) {
	if v != nil && strings.TrimSpace(*v) == "" {
		p.bad = append(p.bad, field)
	}
}

func (p *patchChecker) check(field string, ok bool) {
	if !ok {
		p.bad = append(p.bad, field)
	}
}

func (p *patchChecker) err() error {
	if len(p.bad) == 0 {
		return nil
	}
	return &ValidationError{Fields: p.bad}
}

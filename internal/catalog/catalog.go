// Package catalog holds the fixed card and monster templates the game is
// built from. The templates ship embedded as YAML.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/gauntlet/internal/dice"
	"github.com/KirkDiggler/gauntlet/internal/models"
)

//go:embed data/cards.yaml
var cardsYAML []byte

//go:embed data/monsters.yaml
var monstersYAML []byte

const (
	PermanentTemplateCount = 7
	SingleUseTemplateCount = 6
	PointTemplateCount     = 4
)

// CardTemplate describes one card design and how many copies the deck holds
type CardTemplate struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description"`
	Kind          models.CardKind   `yaml:"-"`
	Effect        models.CardEffect `yaml:"effect"`
	VictoryPoints int               `yaml:"victory_points"`
	Cost          int               `yaml:"cost"`
	Copies        int               `yaml:"copies"`
}

// MonsterTemplate describes the monster at one gauntlet position
type MonsterTemplate struct {
	Position int                `yaml:"position"`
	Name     string             `yaml:"name"`
	Type     models.MonsterType `yaml:"type"`
	Numbers  []int              `yaml:"numbers"`
	Points   int                `yaml:"points"`
	Gold     int                `yaml:"gold"`
}

// Catalog is the validated set of templates
type Catalog struct {
	Permanent []CardTemplate
	SingleUse []CardTemplate
	Point     []CardTemplate
	Monsters  []MonsterTemplate
}

type cardsDocument struct {
	Permanent []CardTemplate `yaml:"permanent"`
	SingleUse []CardTemplate `yaml:"single_use"`
	Point     []CardTemplate `yaml:"point"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog. The embedded data is part of the
// binary, so a parse failure is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(cardsYAML, monstersYAML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("catalog: embedded templates invalid: %v", defaultErr))
	}
	return defaultCatalog
}

// Load parses and validates card and monster templates from raw YAML
func Load(cardsData, monstersData []byte) (*Catalog, error) {
	var cards cardsDocument
	if err := yaml.Unmarshal(cardsData, &cards); err != nil {
		return nil, fmt.Errorf("parsing card templates: %w", err)
	}

	var monsters []MonsterTemplate
	if err := yaml.Unmarshal(monstersData, &monsters); err != nil {
		return nil, fmt.Errorf("parsing monster templates: %w", err)
	}

	c := &Catalog{
		Permanent: tagKind(cards.Permanent, models.CardKindPermanent),
		SingleUse: tagKind(cards.SingleUse, models.CardKindSingleUse),
		Point:     tagKind(cards.Point, models.CardKindPoint),
		Monsters:  monsters,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func tagKind(templates []CardTemplate, kind models.CardKind) []CardTemplate {
	for i := range templates {
		templates[i].Kind = kind
	}
	return templates
}

// CardTemplates returns every card template, permanent first, then
// single-use, then point
func (c *Catalog) CardTemplates() []CardTemplate {
	out := make([]CardTemplate, 0, len(c.Permanent)+len(c.SingleUse)+len(c.Point))
	out = append(out, c.Permanent...)
	out = append(out, c.SingleUse...)
	out = append(out, c.Point...)
	return out
}

// DeckSize is the total number of card copies
func (c *Catalog) DeckSize() int {
	total := 0
	for _, t := range c.CardTemplates() {
		total += t.Copies
	}
	return total
}

// MonsterAt returns the template for a 1-based gauntlet position
func (c *Catalog) MonsterAt(position int) (MonsterTemplate, bool) {
	for _, m := range c.Monsters {
		if m.Position == position {
			return m, true
		}
	}
	return MonsterTemplate{}, false
}

// Validate checks the catalog's structural invariants
func (c *Catalog) Validate() error {
	if len(c.Permanent) != PermanentTemplateCount {
		return fmt.Errorf("catalog: want %d permanent templates, got %d", PermanentTemplateCount, len(c.Permanent))
	}
	if len(c.SingleUse) != SingleUseTemplateCount {
		return fmt.Errorf("catalog: want %d single-use templates, got %d", SingleUseTemplateCount, len(c.SingleUse))
	}
	if len(c.Point) != PointTemplateCount {
		return fmt.Errorf("catalog: want %d point templates, got %d", PointTemplateCount, len(c.Point))
	}

	seen := make(map[string]bool)
	for _, t := range c.CardTemplates() {
		if err := t.validate(); err != nil {
			return err
		}
		if seen[t.ID] {
			return fmt.Errorf("catalog: duplicate card template %q", t.ID)
		}
		seen[t.ID] = true
	}

	return validateMonsters(c.Monsters)
}

func (t CardTemplate) validate() error {
	if t.ID == "" || t.Name == "" {
		return fmt.Errorf("catalog: card template needs id and name (got %q/%q)", t.ID, t.Name)
	}
	if t.Cost < 0 {
		return fmt.Errorf("catalog: card %q: cost must be >= 0", t.ID)
	}
	if t.Copies < 1 {
		return fmt.Errorf("catalog: card %q: copies must be >= 1", t.ID)
	}

	switch t.Kind {
	case models.CardKindPermanent:
		if !slices.Contains(models.PermanentEffects, t.Effect) {
			return fmt.Errorf("catalog: card %q: unknown permanent effect %q", t.ID, t.Effect)
		}
	case models.CardKindSingleUse:
		if !slices.Contains(models.SingleUseEffects, t.Effect) {
			return fmt.Errorf("catalog: card %q: unknown single-use effect %q", t.ID, t.Effect)
		}
	case models.CardKindPoint:
		if t.VictoryPoints < 1 {
			return fmt.Errorf("catalog: point card %q: victory_points must be >= 1", t.ID)
		}
	}
	return nil
}

func validateMonsters(monsters []MonsterTemplate) error {
	if len(monsters) != models.MonsterCount {
		return fmt.Errorf("catalog: want %d monsters, got %d", models.MonsterCount, len(monsters))
	}

	for i, m := range monsters {
		if m.Position != i+1 {
			return fmt.Errorf("catalog: monster %q at index %d has position %d", m.Name, i, m.Position)
		}
		if len(m.Numbers) == 0 {
			return fmt.Errorf("catalog: monster %q has no numbers", m.Name)
		}
		for _, n := range m.Numbers {
			if !dice.IsPoint(n) {
				return fmt.Errorf("catalog: monster %q: %d is not a point number", m.Name, n)
			}
		}
		isLast := i == len(monsters)-1
		if (m.Type == models.MonsterTypeBoss) != isLast {
			return fmt.Errorf("catalog: the boss must be the final monster (%q at %d)", m.Name, m.Position)
		}
	}

	boss := monsters[len(monsters)-1]
	for _, n := range dice.PointNumbers {
		if !slices.Contains(boss.Numbers, n) {
			return fmt.Errorf("catalog: boss %q is missing number %d", boss.Name, n)
		}
	}
	return nil
}

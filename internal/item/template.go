package item

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/osse101/ItemBuilder_Go/internal/domain"
)

// Config is a template file: a versioned list of item definitions
type Config struct {
	Version     string `json:"version" hcl:"version"`
	Description string `json:"description,omitempty" hcl:"description,optional"`

	Items []Def `json:"items" hcl:"item,block"`
}

// Def describes one item. Every field except Name and Kind is optional and
// maps onto the Builder call of the same name.
type Def struct {
	Name string `json:"name" hcl:"name,label"`
	Kind string `json:"kind" hcl:"kind"`

	Amount          *int           `json:"amount,omitempty" hcl:"amount,optional"`
	Damage          *int           `json:"damage,omitempty" hcl:"damage,optional"`
	DisplayName     *string        `json:"display_name,omitempty" hcl:"display_name,optional"`
	Lore            []string       `json:"lore,omitempty" hcl:"lore,optional"`
	Enchants        map[string]int `json:"enchants,omitempty" hcl:"enchants,optional"`
	Flags           []string       `json:"flags,omitempty" hcl:"flags,optional"`
	RepairCost      *int           `json:"repair_cost,omitempty" hcl:"repair_cost,optional"`
	CustomModelData *int           `json:"custom_model_data,omitempty" hcl:"custom_model_data,optional"`
	HideTooltip     *bool          `json:"hide_tooltip,omitempty" hcl:"hide_tooltip,optional"`

	Book       *BookDef      `json:"book,omitempty" hcl:"book,block"`
	Fireworks  []FireworkDef `json:"fireworks,omitempty" hcl:"firework,block"`
	Power      *int          `json:"power,omitempty" hcl:"power,optional"`
	ArmorColor *string       `json:"armor_color,omitempty" hcl:"armor_color,optional"`
	Trim       *TrimDef      `json:"trim,omitempty" hcl:"trim,block"`
	MapScaling *bool         `json:"map_scaling,omitempty" hcl:"map_scaling,optional"`
	Potions    []PotionDef   `json:"potions,omitempty" hcl:"potion,block"`
	MainEffect *string       `json:"main_effect,omitempty" hcl:"main_effect,optional"`
	Skull      *SkullDef     `json:"skull,omitempty" hcl:"skull,block"`
	Patterns   []PatternDef  `json:"patterns,omitempty" hcl:"pattern,block"`
}

type BookDef struct {
	Title  string   `json:"title,omitempty" hcl:"title,optional"`
	Author string   `json:"author,omitempty" hcl:"author,optional"`
	Pages  []string `json:"pages,omitempty" hcl:"pages,optional"`
}

// FireworkDef is a firework effect; colors are #RRGGBB strings
type FireworkDef struct {
	Type       string   `json:"type" hcl:"type"`
	Colors     []string `json:"colors" hcl:"colors"`
	FadeColors []string `json:"fade_colors,omitempty" hcl:"fade_colors,optional"`
	Flicker    bool     `json:"flicker,omitempty" hcl:"flicker,optional"`
	Trail      bool     `json:"trail,omitempty" hcl:"trail,optional"`
}

type TrimDef struct {
	Pattern  string `json:"pattern" hcl:"pattern"`
	Material string `json:"material" hcl:"material"`
}

// PotionDef is a custom potion effect. Particles default to shown.
type PotionDef struct {
	Type      string `json:"type" hcl:"type"`
	Duration  int    `json:"duration" hcl:"duration"`
	Amplifier int    `json:"amplifier,omitempty" hcl:"amplifier,optional"`
	Ambient   bool   `json:"ambient,omitempty" hcl:"ambient,optional"`
	Particles *bool  `json:"particles,omitempty" hcl:"particles,optional"`
}

type SkullDef struct {
	Owner string `json:"owner,omitempty" hcl:"owner,optional"`
	ID    string `json:"id,omitempty" hcl:"id,optional"`
}

type PatternDef struct {
	Color string `json:"color" hcl:"color"`
	Type  string `json:"type" hcl:"type"`
}

// apply replays the definition onto b. Only values that cannot be converted
// (a malformed color or player id) are returned as errors; everything else is
// left to the builder and its mode.
func (d *Def) apply(b *Builder) error {
	if d.Amount != nil {
		b.Amount(*d.Amount)
	}
	if d.Damage != nil {
		b.Damage(*d.Damage)
	}
	if d.DisplayName != nil {
		b.Name(*d.DisplayName)
	}
	if d.Lore != nil {
		b.ColorLore(d.Lore...)
	}
	for _, name := range sortedKeys(d.Enchants) {
		b.Enchant(domain.Enchantment(name), d.Enchants[name])
	}
	if len(d.Flags) > 0 {
		flags := make([]domain.ItemFlag, len(d.Flags))
		for i, f := range d.Flags {
			flags[i] = domain.ItemFlag(f)
		}
		b.AddFlags(flags...)
	}
	if d.RepairCost != nil {
		b.RepairCost(*d.RepairCost)
	}
	if d.CustomModelData != nil {
		b.CustomModelData(*d.CustomModelData)
	}
	if d.HideTooltip != nil {
		b.HideTooltip(*d.HideTooltip)
	}

	if d.Book != nil {
		if d.Book.Title != "" {
			b.BookTitle(d.Book.Title)
		}
		if d.Book.Author != "" {
			b.BookAuthor(d.Book.Author)
		}
		if d.Book.Pages != nil {
			b.BookReplacePages(d.Book.Pages)
		}
	}
	if len(d.Fireworks) > 0 {
		effects := make([]domain.FireworkEffect, len(d.Fireworks))
		for i := range d.Fireworks {
			effect, err := d.Fireworks[i].effect()
			if err != nil {
				return fmt.Errorf(ErrFmtTemplateField, ErrInvalidTemplate, d.Name, "firework", err)
			}
			effects[i] = effect
		}
		b.FireworkAdd(effects)
	}
	if d.Power != nil {
		b.FireworkPower(*d.Power)
	}
	if d.ArmorColor != nil {
		c, err := domain.ParseColor(*d.ArmorColor)
		if err != nil {
			return fmt.Errorf(ErrFmtTemplateField, ErrInvalidTemplate, d.Name, "armor_color", err)
		}
		b.ArmorColor(c)
	}
	if d.Trim != nil {
		b.Trim(domain.TrimPattern(d.Trim.Pattern), domain.TrimMaterial(d.Trim.Material))
	}
	if d.MapScaling != nil {
		b.MapScaling(*d.MapScaling)
	}
	for _, p := range d.Potions {
		b.PotionAdd(p.effect())
	}
	if d.MainEffect != nil {
		b.PotionMain(domain.PotionEffectType(*d.MainEffect))
	}
	if d.Skull != nil {
		if err := d.Skull.apply(b); err != nil {
			return fmt.Errorf(ErrFmtTemplateField, ErrInvalidTemplate, d.Name, "skull", err)
		}
	}
	if len(d.Patterns) > 0 {
		patterns := make([]domain.Pattern, len(d.Patterns))
		for i, p := range d.Patterns {
			patterns[i] = domain.Pattern{Color: domain.DyeColor(p.Color), Type: domain.PatternType(p.Type)}
		}
		b.BannerAddPatterns(patterns)
	}
	return nil
}

func (f *FireworkDef) effect() (domain.FireworkEffect, error) {
	colors, err := parseColors(f.Colors)
	if err != nil {
		return domain.FireworkEffect{}, err
	}
	fade, err := parseColors(f.FadeColors)
	if err != nil {
		return domain.FireworkEffect{}, err
	}
	return domain.FireworkEffect{
		Type:       domain.FireworkType(f.Type),
		Colors:     colors,
		FadeColors: fade,
		Flicker:    f.Flicker,
		Trail:      f.Trail,
	}, nil
}

func (p PotionDef) effect() domain.PotionEffect {
	particles := true
	if p.Particles != nil {
		particles = *p.Particles
	}
	return domain.PotionEffect{
		Type:      domain.PotionEffectType(p.Type),
		Duration:  p.Duration,
		Amplifier: p.Amplifier,
		Ambient:   p.Ambient,
		Particles: particles,
	}
}

func (s *SkullDef) apply(b *Builder) error {
	if s.ID == "" {
		b.SkullOwner(s.Owner)
		return nil
	}
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return err
	}
	b.SkullProfile(s.Owner, id)
	return nil
}

func parseColors(in []string) ([]domain.Color, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]domain.Color, len(in))
	for i, s := range in {
		c, err := domain.ParseColor(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

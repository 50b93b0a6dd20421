package domain

import (
	"fmt"
	"unicode/utf8"
)

// Detail is the variant part of a Meta. The set of implementations is
// closed: only the types in this file satisfy it.
type Detail interface {
	MetaKind() MetaKind
	cloneDetail() Detail
}

// TrimHolder is implemented by the armor-capable variants
type TrimHolder interface {
	Detail
	SetTrim(trim *Trim)
	CurrentTrim() *Trim
}

// NewDetail returns an empty variant for the given meta kind
func NewDetail(kind MetaKind) Detail {
	switch kind {
	case MetaBook:
		return &BookDetail{}
	case MetaFirework:
		return &FireworkDetail{Power: 1}
	case MetaFireworkEffect:
		return &FireworkEffectDetail{}
	case MetaLeatherArmor:
		return &LeatherArmorDetail{}
	case MetaArmor:
		return &ArmorDetail{}
	case MetaMap:
		return &MapDetail{}
	case MetaPotion:
		return &PotionDetail{}
	case MetaSkull:
		return &SkullDetail{}
	case MetaBanner:
		return &BannerDetail{}
	default:
		return PlainDetail{}
	}
}

// PlainDetail carries no kind-specific fields
type PlainDetail struct{}

func (PlainDetail) MetaKind() MetaKind    { return MetaPlain }
func (d PlainDetail) cloneDetail() Detail { return d }

// ==================== Book ====================

// BookDetail holds book title, author and pages
type BookDetail struct {
	Title  string   `json:"title,omitempty"`
	Author string   `json:"author,omitempty"`
	Pages  []string `json:"pages,omitempty"`
}

func (*BookDetail) MetaKind() MetaKind { return MetaBook }

func (d *BookDetail) cloneDetail() Detail {
	c := *d
	c.Pages = cloneSlice(d.Pages)
	return &c
}

// SetTitle sets the title; empty clears it
func (d *BookDetail) SetTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrTitleTooLong, utf8.RuneCountInString(title), MaxTitleLength)
	}
	d.Title = title
	return nil
}

// SetAuthor sets the author; empty clears it
func (d *BookDetail) SetAuthor(author string) {
	d.Author = author
}

// SetPage replaces an existing page. Pages are numbered from 1.
func (d *BookDetail) SetPage(page int, data string) error {
	if page < 1 || page > len(d.Pages) {
		return fmt.Errorf("%w: page %d of %d", ErrIndexOutOfRange, page, len(d.Pages))
	}
	if err := checkPage(data); err != nil {
		return err
	}
	d.Pages[page-1] = data
	return nil
}

// SetPages replaces every page
func (d *BookDetail) SetPages(pages []string) error {
	if len(pages) > MaxBookPages {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyPages, len(pages), MaxBookPages)
	}
	for _, p := range pages {
		if err := checkPage(p); err != nil {
			return err
		}
	}
	d.Pages = cloneSlice(pages)
	return nil
}

// AddPages appends pages after the last one
func (d *BookDetail) AddPages(pages ...string) error {
	if len(d.Pages)+len(pages) > MaxBookPages {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyPages, len(d.Pages)+len(pages), MaxBookPages)
	}
	for _, p := range pages {
		if err := checkPage(p); err != nil {
			return err
		}
	}
	d.Pages = append(d.Pages, pages...)
	return nil
}

func checkPage(data string) error {
	if n := utf8.RuneCountInString(data); n > MaxPageLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrPageTooLong, n, MaxPageLength)
	}
	return nil
}

// ==================== Firework ====================

// FireworkDetail holds the effects and flight power of a rocket
type FireworkDetail struct {
	Effects []FireworkEffect `json:"effects,omitempty"`
	Power   int              `json:"power"`
}

func (*FireworkDetail) MetaKind() MetaKind { return MetaFirework }

func (d *FireworkDetail) cloneDetail() Detail {
	c := *d
	if d.Effects != nil {
		c.Effects = make([]FireworkEffect, len(d.Effects))
		for i, e := range d.Effects {
			c.Effects[i] = e.clone()
		}
	}
	return &c
}

// AddEffects appends effects
func (d *FireworkDetail) AddEffects(effects ...FireworkEffect) {
	for _, e := range effects {
		d.Effects = append(d.Effects, e.clone())
	}
}

// RemoveEffect removes the effect at index
func (d *FireworkDetail) RemoveEffect(index int) error {
	if index < 0 || index >= len(d.Effects) {
		return fmt.Errorf("%w: effect %d of %d", ErrIndexOutOfRange, index, len(d.Effects))
	}
	d.Effects = append(d.Effects[:index], d.Effects[index+1:]...)
	return nil
}

// ClearEffects removes every effect
func (d *FireworkDetail) ClearEffects() {
	d.Effects = nil
}

// SetPower sets the flight power
func (d *FireworkDetail) SetPower(power int) error {
	if power < MinFireworkPower || power > MaxFireworkPower {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidPower, power, MinFireworkPower, MaxFireworkPower)
	}
	d.Power = power
	return nil
}

// FireworkEffectDetail is a firework star: a single effect slot
type FireworkEffectDetail struct {
	Effect *FireworkEffect `json:"effect,omitempty"`
}

func (*FireworkEffectDetail) MetaKind() MetaKind { return MetaFireworkEffect }

func (d *FireworkEffectDetail) cloneDetail() Detail {
	if d.Effect == nil {
		return &FireworkEffectDetail{}
	}
	e := d.Effect.clone()
	return &FireworkEffectDetail{Effect: &e}
}

// SetEffect fills the slot; nil empties it
func (d *FireworkEffectDetail) SetEffect(effect *FireworkEffect) {
	if effect == nil {
		d.Effect = nil
		return
	}
	e := effect.clone()
	d.Effect = &e
}

// ==================== Armor ====================

// LeatherArmorDetail holds the dye color and trim of leather armor
type LeatherArmorDetail struct {
	Color     *Color `json:"color,omitempty"`
	ArmorTrim *Trim  `json:"trim,omitempty"`
}

func (*LeatherArmorDetail) MetaKind() MetaKind { return MetaLeatherArmor }

func (d *LeatherArmorDetail) cloneDetail() Detail {
	c := &LeatherArmorDetail{}
	if d.Color != nil {
		col := *d.Color
		c.Color = &col
	}
	if d.ArmorTrim != nil {
		t := *d.ArmorTrim
		c.ArmorTrim = &t
	}
	return c
}

// SetColor dyes the armor
func (d *LeatherArmorDetail) SetColor(color Color) {
	d.Color = &color
}

// SetTrim sets or clears (nil) the trim
func (d *LeatherArmorDetail) SetTrim(trim *Trim) {
	d.ArmorTrim = copyTrim(trim)
}

// CurrentTrim returns the applied trim, if any
func (d *LeatherArmorDetail) CurrentTrim() *Trim {
	return copyTrim(d.ArmorTrim)
}

// ArmorDetail holds the trim of non-leather armor
type ArmorDetail struct {
	ArmorTrim *Trim `json:"trim,omitempty"`
}

func (*ArmorDetail) MetaKind() MetaKind { return MetaArmor }

func (d *ArmorDetail) cloneDetail() Detail {
	return &ArmorDetail{ArmorTrim: copyTrim(d.ArmorTrim)}
}

// SetTrim sets or clears (nil) the trim
func (d *ArmorDetail) SetTrim(trim *Trim) {
	d.ArmorTrim = copyTrim(trim)
}

// CurrentTrim returns the applied trim, if any
func (d *ArmorDetail) CurrentTrim() *Trim {
	return copyTrim(d.ArmorTrim)
}

func copyTrim(t *Trim) *Trim {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// ==================== Map ====================

// MapDetail holds map rendering options
type MapDetail struct {
	Scaling bool `json:"scaling"`
}

func (*MapDetail) MetaKind() MetaKind { return MetaMap }

func (d *MapDetail) cloneDetail() Detail {
	c := *d
	return &c
}

// SetScaling toggles map scaling
func (d *MapDetail) SetScaling(scaling bool) {
	d.Scaling = scaling
}

// ==================== Potion ====================

// PotionDetail holds custom potion effects; the first effect is the main one
type PotionDetail struct {
	Effects []PotionEffect `json:"effects,omitempty"`
}

func (*PotionDetail) MetaKind() MetaKind { return MetaPotion }

func (d *PotionDetail) cloneDetail() Detail {
	return &PotionDetail{Effects: cloneSlice(d.Effects)}
}

// HasCustomEffect reports whether an effect of the given type is present
func (d *PotionDetail) HasCustomEffect(effectType PotionEffectType) bool {
	return d.indexOf(effectType) >= 0
}

// SetMainEffect moves an existing effect to the front of the list
func (d *PotionDetail) SetMainEffect(effectType PotionEffectType) error {
	i := d.indexOf(effectType)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrEffectNotFound, effectType)
	}
	main := d.Effects[i]
	copy(d.Effects[1:i+1], d.Effects[:i])
	d.Effects[0] = main
	return nil
}

// AddCustomEffect adds an effect. An effect of the same type is replaced
// when overwrite is set, otherwise the call fails.
func (d *PotionDetail) AddCustomEffect(effect PotionEffect, overwrite bool) error {
	if i := d.indexOf(effect.Type); i >= 0 {
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrEffectExists, effect.Type)
		}
		d.Effects[i] = effect
		return nil
	}
	d.Effects = append(d.Effects, effect)
	return nil
}

// RemoveCustomEffect removes the effect of the given type, if present
func (d *PotionDetail) RemoveCustomEffect(effectType PotionEffectType) {
	if i := d.indexOf(effectType); i >= 0 {
		d.Effects = append(d.Effects[:i], d.Effects[i+1:]...)
	}
}

// ClearCustomEffects removes every custom effect
func (d *PotionDetail) ClearCustomEffects() {
	d.Effects = nil
}

func (d *PotionDetail) indexOf(effectType PotionEffectType) int {
	for i, e := range d.Effects {
		if e.Type == effectType {
			return i
		}
	}
	return -1
}

// ==================== Skull ====================

// SkullDetail holds the owner of a player head
type SkullDetail struct {
	Owner *SkullProfile `json:"owner,omitempty"`
}

func (*SkullDetail) MetaKind() MetaKind { return MetaSkull }

func (d *SkullDetail) cloneDetail() Detail {
	if d.Owner == nil {
		return &SkullDetail{}
	}
	o := *d.Owner
	return &SkullDetail{Owner: &o}
}

// SetOwner sets the owner by name; empty clears it
func (d *SkullDetail) SetOwner(name string) error {
	if name == "" {
		d.Owner = nil
		return nil
	}
	return d.SetProfile(SkullProfile{Name: name})
}

// SetProfile sets the owner profile
func (d *SkullDetail) SetProfile(profile SkullProfile) error {
	if n := utf8.RuneCountInString(profile.Name); n > MaxOwnerNameLength {
		return fmt.Errorf("%w: name %q is %d characters (max %d)", ErrInvalidOwner, profile.Name, n, MaxOwnerNameLength)
	}
	d.Owner = &profile
	return nil
}

// ==================== Banner ====================

// BannerDetail holds the pattern layers of a banner
type BannerDetail struct {
	Patterns []Pattern `json:"patterns,omitempty"`
}

func (*BannerDetail) MetaKind() MetaKind { return MetaBanner }

func (d *BannerDetail) cloneDetail() Detail {
	return &BannerDetail{Patterns: cloneSlice(d.Patterns)}
}

// SetPattern replaces the layer at index
func (d *BannerDetail) SetPattern(index int, pattern Pattern) error {
	if index < 0 || index >= len(d.Patterns) {
		return fmt.Errorf("%w: pattern %d of %d", ErrIndexOutOfRange, index, len(d.Patterns))
	}
	d.Patterns[index] = pattern
	return nil
}

// SetPatterns replaces every layer
func (d *BannerDetail) SetPatterns(patterns []Pattern) {
	d.Patterns = cloneSlice(patterns)
}

// AddPattern appends a layer
func (d *BannerDetail) AddPattern(pattern Pattern) {
	d.Patterns = append(d.Patterns, pattern)
}

// RemovePattern removes the layer at index
func (d *BannerDetail) RemovePattern(index int) error {
	if index < 0 || index >= len(d.Patterns) {
		return fmt.Errorf("%w: pattern %d of %d", ErrIndexOutOfRange, index, len(d.Patterns))
	}
	d.Patterns = append(d.Patterns[:index], d.Patterns[index+1:]...)
	return nil
}

package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Meta is the decorative metadata of a stack. The kind-independent fields
// live here; the kind-specific ones live in Detail.
type Meta struct {
	DisplayName     *string
	Lore            []string
	Enchants        map[Enchantment]int
	Flags           map[ItemFlag]struct{}
	RepairCost      int
	CustomModelData *int
	HideTooltip     bool
	Detail          Detail
}

// NewMeta returns empty metadata carrying the given variant
func NewMeta(kind MetaKind) *Meta {
	return &Meta{Detail: NewDetail(kind)}
}

// Kind returns the tag of the active variant
func (m *Meta) Kind() MetaKind {
	if m.Detail == nil {
		return MetaPlain
	}
	return m.Detail.MetaKind()
}

// Clone returns a deep copy sharing no mutable state with m
func (m *Meta) Clone() *Meta {
	if m == nil {
		return nil
	}
	c := &Meta{
		Lore:        cloneSlice(m.Lore),
		RepairCost:  m.RepairCost,
		HideTooltip: m.HideTooltip,
	}
	if m.DisplayName != nil {
		name := *m.DisplayName
		c.DisplayName = &name
	}
	if m.CustomModelData != nil {
		v := *m.CustomModelData
		c.CustomModelData = &v
	}
	if m.Enchants != nil {
		c.Enchants = make(map[Enchantment]int, len(m.Enchants))
		for k, v := range m.Enchants {
			c.Enchants[k] = v
		}
	}
	if m.Flags != nil {
		c.Flags = make(map[ItemFlag]struct{}, len(m.Flags))
		for k := range m.Flags {
			c.Flags[k] = struct{}{}
		}
	}
	if m.Detail != nil {
		c.Detail = m.Detail.cloneDetail()
	} else {
		c.Detail = PlainDetail{}
	}
	return c
}

// SetDisplayName sets the display name; nil clears it
func (m *Meta) SetDisplayName(name *string) {
	if name == nil {
		m.DisplayName = nil
		return
	}
	n := *name
	m.DisplayName = &n
}

// HasLore reports whether any lore line is present
func (m *Meta) HasLore() bool {
	return len(m.Lore) > 0
}

// SetLore replaces the lore; an empty list removes it
func (m *Meta) SetLore(lore []string) {
	if len(lore) == 0 {
		m.Lore = nil
		return
	}
	m.Lore = cloneSlice(lore)
}

// RemoveLore removes the line at index
func (m *Meta) RemoveLore(index int) error {
	if index < 0 || index >= len(m.Lore) {
		return fmt.Errorf("%w: lore line %d of %d", ErrIndexOutOfRange, index, len(m.Lore))
	}
	m.Lore = append(m.Lore[:index], m.Lore[index+1:]...)
	if len(m.Lore) == 0 {
		m.Lore = nil
	}
	return nil
}

// AddEnchant adds an enchantment. An existing enchantment of the same type
// is replaced only when overwrite is set.
func (m *Meta) AddEnchant(enchant Enchantment, level int, overwrite bool) error {
	if level < 1 || level > MaxEnchantLevel {
		return fmt.Errorf("%w: %s level %d (must be 1-%d)", ErrInvalidLevel, enchant, level, MaxEnchantLevel)
	}
	if _, ok := m.Enchants[enchant]; ok && !overwrite {
		return fmt.Errorf("%w: %s", ErrEnchantConflict, enchant)
	}
	if m.Enchants == nil {
		m.Enchants = make(map[Enchantment]int)
	}
	m.Enchants[enchant] = level
	return nil
}

// RemoveEnchant removes an enchantment, if present
func (m *Meta) RemoveEnchant(enchant Enchantment) {
	delete(m.Enchants, enchant)
	if len(m.Enchants) == 0 {
		m.Enchants = nil
	}
}

// EnchantLevel returns the level of an enchantment and whether it is present
func (m *Meta) EnchantLevel(enchant Enchantment) (int, bool) {
	level, ok := m.Enchants[enchant]
	return level, ok
}

// AddFlags adds tooltip flags
func (m *Meta) AddFlags(flags ...ItemFlag) {
	if len(flags) == 0 {
		return
	}
	if m.Flags == nil {
		m.Flags = make(map[ItemFlag]struct{}, len(flags))
	}
	for _, f := range flags {
		m.Flags[f] = struct{}{}
	}
}

// HasFlag reports whether a flag is set
func (m *Meta) HasFlag(flag ItemFlag) bool {
	_, ok := m.Flags[flag]
	return ok
}

// FlagList returns the set flags in sorted order
func (m *Meta) FlagList() []ItemFlag {
	if len(m.Flags) == 0 {
		return nil
	}
	out := make([]ItemFlag, 0, len(m.Flags))
	for f := range m.Flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetCustomModelData sets the model override value
func (m *Meta) SetCustomModelData(value int) {
	m.CustomModelData = &value
}

// SetHideTooltip toggles the whole tooltip
func (m *Meta) SetHideTooltip(hide bool) {
	m.HideTooltip = hide
}

type metaJSON struct {
	MetaKind        string              `json:"meta_kind"`
	DisplayName     *string             `json:"display_name,omitempty"`
	Lore            []string            `json:"lore,omitempty"`
	Enchants        map[Enchantment]int `json:"enchants,omitempty"`
	Flags           []ItemFlag          `json:"flags,omitempty"`
	RepairCost      int                 `json:"repair_cost,omitempty"`
	CustomModelData *int                `json:"custom_model_data,omitempty"`
	HideTooltip     bool                `json:"hide_tooltip,omitempty"`
	Detail          Detail              `json:"detail,omitempty"`
}

// MarshalJSON renders the metadata with its variant tag
func (m *Meta) MarshalJSON() ([]byte, error) {
	out := metaJSON{
		MetaKind:        m.Kind().String(),
		DisplayName:     m.DisplayName,
		Lore:            m.Lore,
		Enchants:        m.Enchants,
		Flags:           m.FlagList(),
		RepairCost:      m.RepairCost,
		CustomModelData: m.CustomModelData,
		HideTooltip:     m.HideTooltip,
	}
	if m.Kind() != MetaPlain {
		out.Detail = m.Detail
	}
	return json.Marshal(out)
}

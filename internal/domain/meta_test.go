package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeta_Lore(t *testing.T) {
	m := NewMeta(MetaPlain)
	assert.False(t, m.HasLore())

	lines := []string{"a", "b", "c"}
	m.SetLore(lines)
	lines[0] = "changed"
	assert.Equal(t, []string{"a", "b", "c"}, m.Lore)

	require.NoError(t, m.RemoveLore(1))
	assert.Equal(t, []string{"a", "c"}, m.Lore)
	assert.ErrorIs(t, m.RemoveLore(2), ErrIndexOutOfRange)

	require.NoError(t, m.RemoveLore(0))
	require.NoError(t, m.RemoveLore(0))
	assert.Nil(t, m.Lore, "removing the last line clears lore")

	m.SetLore([]string{})
	assert.Nil(t, m.Lore)
}

func TestMeta_AddEnchant(t *testing.T) {
	m := NewMeta(MetaPlain)

	require.NoError(t, m.AddEnchant(EnchantSharpness, 3, false))
	assert.ErrorIs(t, m.AddEnchant(EnchantSharpness, 4, false), ErrEnchantConflict)
	level, _ := m.EnchantLevel(EnchantSharpness)
	assert.Equal(t, 3, level)

	require.NoError(t, m.AddEnchant(EnchantSharpness, 5, true))
	level, ok := m.EnchantLevel(EnchantSharpness)
	assert.True(t, ok)
	assert.Equal(t, 5, level)

	assert.ErrorIs(t, m.AddEnchant(EnchantMending, 0, true), ErrInvalidLevel)
	assert.ErrorIs(t, m.AddEnchant(EnchantMending, MaxEnchantLevel+1, true), ErrInvalidLevel)

	m.RemoveEnchant(EnchantSharpness)
	assert.Nil(t, m.Enchants)
	m.RemoveEnchant(EnchantSharpness)
}

func TestMeta_Flags(t *testing.T) {
	m := NewMeta(MetaPlain)
	assert.Nil(t, m.FlagList())

	m.AddFlags(FlagHideDye, FlagHideEnchants, FlagHideDye)
	assert.True(t, m.HasFlag(FlagHideDye))
	assert.False(t, m.HasFlag(FlagHideAttributes))
	assert.Equal(t, []ItemFlag{FlagHideDye, FlagHideEnchants}, m.FlagList())
}

func TestMeta_CloneIsDeep(t *testing.T) {
	m := NewMeta(MetaBanner)
	name := "Flag"
	m.SetDisplayName(&name)
	m.SetCustomModelData(7)
	m.SetLore([]string{"x"})
	m.AddFlags(FlagHideDye)
	require.NoError(t, m.AddEnchant(EnchantUnbreaking, 1, true))
	m.Detail.(*BannerDetail).AddPattern(Pattern{Color: DyeRed, Type: PatternCross})

	c := m.Clone()
	require.Equal(t, m, c)

	*c.DisplayName = "Other"
	*c.CustomModelData = 8
	c.Enchants[EnchantUnbreaking] = 3
	c.AddFlags(FlagHideEnchants)
	c.Detail.(*BannerDetail).Patterns[0].Color = DyeBlue

	assert.Equal(t, "Flag", *m.DisplayName)
	assert.Equal(t, 7, *m.CustomModelData)
	assert.Equal(t, 1, m.Enchants[EnchantUnbreaking])
	assert.False(t, m.HasFlag(FlagHideEnchants))
	assert.Equal(t, DyeRed, m.Detail.(*BannerDetail).Patterns[0].Color)
}

func TestMeta_MarshalJSON(t *testing.T) {
	t.Run("plain omits detail", func(t *testing.T) {
		m := NewMeta(MetaPlain)
		m.AddFlags(FlagHideEnchants)

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"meta_kind": "plain", "flags": ["HIDE_ENCHANTS"]}`, string(data))
	})

	t.Run("variant carries detail", func(t *testing.T) {
		m := NewMeta(MetaMap)
		m.Detail.(*MapDetail).SetScaling(true)

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"meta_kind": "map", "detail": {"scaling": true}}`, string(data))
	})
}

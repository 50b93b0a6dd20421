package item

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemBuilder_Go/internal/domain"
	"github.com/osse101/ItemBuilder_Go/internal/metrics"
	"github.com/osse101/ItemBuilder_Go/internal/naming"
	"github.com/osse101/ItemBuilder_Go/internal/validation"
)

const jsonTemplate = `{
	"version": "1.0",
	"description": "Test items",
	"items": [
		{
			"name": "excalibur",
			"kind": "diamond_sword",
			"display_name": "&6Excalibur",
			"lore": ["&7Legendary", "plain"],
			"enchants": {"sharpness": 5, "unbreaking": 3},
			"flags": ["HIDE_ENCHANTS"],
			"damage": 12,
			"repair_cost": 4
		},
		{
			"name": "notch_head",
			"kind": "player_head",
			"skull": {"owner": "Notch", "id": "069a79f4-44e9-4726-a5be-fca90e38aaf5"}
		},
		{
			"name": "speed",
			"kind": "splash_potion",
			"potions": [
				{"type": "poison", "duration": 100},
				{"type": "speed", "duration": 600, "amplifier": 1, "particles": false}
			],
			"main_effect": "speed"
		}
	]
}`

const hclTemplate = `
version     = "1.2"
description = "hcl test"

item "rocket" {
  kind  = "minecraft:firework_rocket"
  power = 3

  firework {
    type   = "STAR"
    colors = [color.red, "#00ff00"]
    trail  = true
  }
}

item "flag" {
  kind = "white_banner"

  pattern {
    color = dye.blue
    type  = "cross"
  }
  pattern {
    color = dye.black
    type  = "border"
  }
}

item "boots" {
  kind        = "Leather Boots"
  armor_color = color.lime

  trim {
    pattern  = "coast"
    material = "gold"
  }
}

item "journal" {
  kind = "written_book"

  book {
    title  = "Journal"
    author = "Steve"
    pages  = ["day one", "day two"]
  }
}
`

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestLoader(t *testing.T, opts ...Option) Loader {
	t.Helper()
	resolver, err := naming.NewResolver("")
	require.NoError(t, err)
	return NewLoader(resolver, quiet(opts...)...)
}

func TestItemLoader_Load(t *testing.T) {
	loader := newTestLoader(t)

	t.Run("valid JSON file", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.TemplatesLoaded.WithLabelValues(FormatJSON))

		config, err := loader.Load(createTempFile(t, "items.json", jsonTemplate))

		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		assert.Equal(t, "Test items", config.Description)
		require.Len(t, config.Items, 3)
		assert.Equal(t, "excalibur", config.Items[0].Name)
		assert.Equal(t, map[string]int{"sharpness": 5, "unbreaking": 3}, config.Items[0].Enchants)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.TemplatesLoaded.WithLabelValues(FormatJSON)))
	})

	t.Run("valid HCL file", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.TemplatesLoaded.WithLabelValues(FormatHCL))

		config, err := loader.Load(createTempFile(t, "items.hcl", hclTemplate))

		require.NoError(t, err)
		assert.Equal(t, "1.2", config.Version)
		require.Len(t, config.Items, 4)
		assert.Equal(t, "rocket", config.Items[0].Name)
		require.Len(t, config.Items[0].Fireworks, 1)
		assert.Equal(t, []string{"#B02E26", "#00ff00"}, config.Items[0].Fireworks[0].Colors)
		assert.Equal(t, "blue", config.Items[1].Patterns[0].Color)
		require.NotNil(t, config.Items[3].Book)
		assert.Equal(t, "Journal", config.Items[3].Book.Title)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.TemplatesLoaded.WithLabelValues(FormatHCL)))
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read template file")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, "items.yaml", "version: 1"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, "bad.json", `{invalid json}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("JSON schema violation", func(t *testing.T) {
		content := `{"version": "1.0", "items": [{"name": "no_kind"}]}`
		_, err := loader.Load(createTempFile(t, "nokind.json", content))
		assert.ErrorIs(t, err, validation.ErrSchemaValidation)
	})

	t.Run("JSON unknown field", func(t *testing.T) {
		content := `{"version": "1.0", "items": [{"name": "a", "kind": "stone", "colour": "red"}]}`
		_, err := loader.Load(createTempFile(t, "extra.json", content))
		assert.ErrorIs(t, err, validation.ErrSchemaValidation)
	})

	t.Run("HCL syntax error", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, "bad.hcl", `item "a" {`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse HCL file")
	})

	t.Run("HCL missing required attribute", func(t *testing.T) {
		content := `
version = "1.0"
item "a" {
  amount = 2
}`
		_, err := loader.Load(createTempFile(t, "nokind.hcl", content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode HCL file")
	})

	t.Run("HCL unknown variable", func(t *testing.T) {
		content := `
version = "1.0"
item "a" {
  kind        = "leather_boots"
  armor_color = colour.red
}`
		_, err := loader.Load(createTempFile(t, "unknown.hcl", content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode HCL file")
	})
}

func TestItemLoader_Validate(t *testing.T) {
	loader := newTestLoader(t)

	valid := func() *Config {
		return &Config{
			Version: "1.0.0",
			Items: []Def{
				{Name: "a", Kind: "stone"},
				{Name: "b", Kind: "Diamond Sword"},
			},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, loader.Validate(valid()))
	})

	t.Run("nil config", func(t *testing.T) {
		assert.ErrorIs(t, loader.Validate(nil), ErrInvalidTemplate)
	})

	t.Run("version", func(t *testing.T) {
		tests := []struct {
			version string
			ok      bool
		}{
			{"1", true},
			{"1.0", true},
			{"1.9.3", true},
			{"v1.4.0", true},
			{"0.9.0", false},
			{"2.0.0", false},
			{"", false},
			{"latest", false},
		}
		for _, tt := range tests {
			t.Run(tt.version, func(t *testing.T) {
				cfg := valid()
				cfg.Version = tt.version
				err := loader.Validate(cfg)
				if tt.ok {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, ErrUnsupportedVersion)
				}
			})
		}
	})

	t.Run("no items", func(t *testing.T) {
		cfg := valid()
		cfg.Items = nil
		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, ErrInvalidTemplate)
		assert.Contains(t, err.Error(), ErrMsgNoItemsDefined)
	})

	t.Run("empty name", func(t *testing.T) {
		cfg := valid()
		cfg.Items[1].Name = ""
		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, ErrInvalidTemplate)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("duplicate name", func(t *testing.T) {
		cfg := valid()
		cfg.Items[1].Name = "a"
		assert.ErrorIs(t, loader.Validate(cfg), ErrDuplicateName)
	})

	t.Run("unknown kind", func(t *testing.T) {
		cfg := valid()
		cfg.Items[0].Kind = "laser_gun"
		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, domain.ErrUnknownKind)
		assert.Contains(t, err.Error(), "laser_gun")
	})
}

func TestItemLoader_BuildAll(t *testing.T) {
	ctx := context.Background()

	t.Run("JSON template", func(t *testing.T) {
		loader := newTestLoader(t)
		config, err := loader.Load(createTempFile(t, "items.json", jsonTemplate))
		require.NoError(t, err)

		built, err := loader.BuildAll(ctx, config)
		require.NoError(t, err)
		require.Len(t, built, 3)

		sword := built[0].Stack
		assert.Equal(t, "excalibur", built[0].Name)
		assert.Equal(t, domain.KindDiamondSword, sword.Kind)
		assert.Equal(t, "&6Excalibur", *sword.Meta.DisplayName, "quiet() uses a passthrough translator")
		assert.Equal(t, []string{"&7Legendary", "plain"}, sword.Meta.Lore)
		assert.Equal(t, 5, sword.Meta.Enchants[domain.EnchantSharpness])
		assert.True(t, sword.Meta.HasFlag(domain.FlagHideEnchants))
		assert.Equal(t, 12, sword.Damage)
		assert.Equal(t, 4, sword.Meta.RepairCost)

		skull := built[1].Stack.Meta.Detail.(*domain.SkullDetail)
		require.NotNil(t, skull.Owner)
		assert.Equal(t, "Notch", skull.Owner.Name)
		assert.Equal(t, "069a79f4-44e9-4726-a5be-fca90e38aaf5", skull.Owner.ID.String())

		potion := built[2].Stack.Meta.Detail.(*domain.PotionDetail)
		require.Len(t, potion.Effects, 2)
		assert.Equal(t, domain.EffectSpeed, potion.Effects[0].Type, "main effect moves to the front")
		assert.False(t, potion.Effects[0].Particles)
		assert.True(t, potion.Effects[1].Particles)
	})

	t.Run("HCL template", func(t *testing.T) {
		loader := newTestLoader(t)
		config, err := loader.Load(createTempFile(t, "items.hcl", hclTemplate))
		require.NoError(t, err)

		built, err := loader.BuildAll(ctx, config)
		require.NoError(t, err)
		require.Len(t, built, 4)

		rocket := built[0].Stack.Meta.Detail.(*domain.FireworkDetail)
		assert.Equal(t, 3, rocket.Power)
		require.Len(t, rocket.Effects, 1)
		red, _ := domain.DyeRed.Color()
		assert.Equal(t, []domain.Color{red, domain.RGB(0, 255, 0)}, rocket.Effects[0].Colors)
		assert.True(t, rocket.Effects[0].Trail)

		banner := built[1].Stack.Meta.Detail.(*domain.BannerDetail)
		assert.Equal(t, []domain.Pattern{
			{Color: domain.DyeBlue, Type: domain.PatternCross},
			{Color: domain.DyeBlack, Type: domain.PatternBorder},
		}, banner.Patterns)

		boots := built[2].Stack.Meta.Detail.(*domain.LeatherArmorDetail)
		lime, _ := domain.DyeLime.Color()
		require.NotNil(t, boots.Color)
		assert.Equal(t, lime, *boots.Color)
		require.NotNil(t, boots.ArmorTrim)
		assert.Equal(t, domain.NewTrim(domain.TrimGold, domain.TrimCoast), *boots.ArmorTrim)

		book := built[3].Stack.Meta.Detail.(*domain.BookDetail)
		assert.Equal(t, "Journal", book.Title)
		assert.Equal(t, []string{"day one", "day two"}, book.Pages)
	})

	t.Run("strict mode stops at the first bad item", func(t *testing.T) {
		loader := newTestLoader(t)
		title := Def{Name: "odd", Kind: "stone", Book: &BookDef{Title: "Stone book"}}
		config := &Config{Version: "1.0", Items: []Def{{Name: "ok", Kind: "stick"}, title}}

		built, err := loader.BuildAll(ctx, config)

		assert.Nil(t, built)
		assert.ErrorIs(t, err, ErrBuildFailed)
		assert.ErrorIs(t, err, domain.ErrWrongMetaKind)
		assert.Contains(t, err.Error(), "'odd'")
	})

	t.Run("silent mode ignores bad calls", func(t *testing.T) {
		loader := newTestLoader(t, WithFailSilently(true))
		config := &Config{Version: "1.0", Items: []Def{
			{Name: "odd", Kind: "stone", Book: &BookDef{Title: "Stone book"}},
		}}

		built, err := loader.BuildAll(ctx, config)

		require.NoError(t, err)
		require.Len(t, built, 1)
		assert.Equal(t, domain.MetaPlain, built[0].Stack.Meta.Kind())
	})

	t.Run("malformed color is a template error in any mode", func(t *testing.T) {
		loader := newTestLoader(t, WithFailSilently(true))
		bad := "not-a-color"
		config := &Config{Version: "1.0", Items: []Def{{Name: "boots", Kind: "leather_boots", ArmorColor: &bad}}}

		_, err := loader.BuildAll(ctx, config)

		assert.ErrorIs(t, err, ErrInvalidTemplate)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "armor_color")
	})

	t.Run("validates before building", func(t *testing.T) {
		loader := newTestLoader(t)
		_, err := loader.BuildAll(ctx, &Config{Version: "3.0"})
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("canceled context", func(t *testing.T) {
		loader := newTestLoader(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := loader.BuildAll(canceled, &Config{Version: "1.0", Items: []Def{{Name: "a", Kind: "stone"}}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

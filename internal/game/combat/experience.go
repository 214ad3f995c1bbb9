package combat

import (
	"log/slog"

	"github.com/sintov/rpgbot/internal/data"
	"github.com/sintov/rpgbot/internal/model"
)

// VictoryReward is what defeating an enemy granted.
type VictoryReward struct {
	XP        int64
	LeveledUp bool
	NewLevel  int32
	Loot      []LootDrop
}

// LootDrop is one item stack rolled from the enemy drop table.
type LootDrop struct {
	ItemID string
	Count  int32
}

// RewardVictory grants XP for the defeated enemy, applies level-ups and
// rolls the drop table. Level-up restores all pools to max.
func (r *Resolver) RewardVictory(player *model.Player, enemy *model.Enemy, xpMult, dropMult float64) VictoryReward {
	if xpMult <= 0 {
		xpMult = 1.0
	}

	xp := int64(float64(enemy.BaseXP) * xpMult)
	player.AddExperience(xp)

	reward := VictoryReward{XP: xp, Loot: r.rollDrops(enemy.Drops, dropMult)}

	oldLevel := player.Level()
	newLevel := data.LevelForExp(player.Experience(), oldLevel)
	if newLevel > oldLevel {
		player.SetLevel(newLevel)
		player.SetCurrentHP(player.MaxHP())
		player.SetCurrentMana(player.MaxMana())
		player.SetCurrentStamina(player.MaxStamina())
		reward.LeveledUp = true
		reward.NewLevel = newLevel

		slog.Info("level up",
			"player", player.ID(),
			"old_level", oldLevel,
			"new_level", newLevel)
	}

	slog.Debug("victory reward",
		"player", player.ID(),
		"enemy", enemy.TemplateID,
		"xp", xp,
		"drops", len(reward.Loot))

	return reward
}

// rollDrops rolls each entry of a drop table once.
func (r *Resolver) rollDrops(table []model.DropEntry, dropMult float64) []LootDrop {
	if dropMult <= 0 {
		dropMult = 1.0
	}
	var out []LootDrop
	for _, entry := range table {
		chance := entry.Chance * dropMult
		if chance > 1 {
			chance = 1
		}
		if r.dice.Float64() >= chance {
			continue
		}
		count := entry.Min
		if entry.Max > entry.Min {
			count = entry.Min + int32(r.dice.IntN(int(entry.Max-entry.Min)+1))
		}
		if count < 1 {
			count = 1
		}
		out = append(out, LootDrop{ItemID: entry.ItemID, Count: count})
	}
	return out
}

package data

// MaxLevel is the maximum achievable combatant level.
const MaxLevel = 100

// levelCurve holds cumulative XP required to reach each level.
// Index = level (0..MaxLevel). Levels 0 and 1 require 0 XP.
var levelCurve [MaxLevel + 1]int64

func init() {
	// Quadratic-cubic blend: early levels come fast, later levels grind.
	// Cumulative cost to reach level L: 50·(L−1)² + 10·(L−1)³.
	for level := int64(2); level <= MaxLevel; level++ {
		n := level - 1
		levelCurve[level] = 50*n*n + 10*n*n*n
	}
}

// XPForLevel returns cumulative XP required to reach the given level.
// Out-of-range levels clamp to the curve bounds.
func XPForLevel(level int32) int64 {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levelCurve[level]
}

// LevelForExp returns the level a combatant with the given cumulative XP
// holds, walking up from startLevel. Levels are never lost: the result is
// at least startLevel even if XP was drained by a penalty.
func LevelForExp(exp int64, startLevel int32) int32 {
	if startLevel < 1 {
		startLevel = 1
	}
	level := startLevel
	for level < MaxLevel {
		if levelCurve[level+1] > exp {
			break
		}
		level++
	}
	return level
}

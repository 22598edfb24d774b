// internal/entity/types.go
package entity

import "fmt"

// EnemyID is the stable handle of an enemy within a level. Ids are handed
// out by the level in increasing order and double as indices into Records.
type EnemyID uint64

// EnemyKind selects the stats an enemy spawns with.
type EnemyKind uint8

const (
	Chicken EnemyKind = iota
	Boar
	EnemyKindCount
)

func (k EnemyKind) String() string {
	switch k {
	case Chicken:
		return "chicken"
	case Boar:
		return "boar"
	default:
		return fmt.Sprintf("enemy(%d)", uint8(k))
	}
}

// ParseEnemyKind maps a definition-file name to its kind.
func ParseEnemyKind(s string) (EnemyKind, error) {
	for k := EnemyKind(0); k < EnemyKindCount; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy kind %q", s)
}

// Fate records why an enemy left the level. It is telemetry only: any
// non-Alive fate simply means the enemy is removed.
type Fate uint8

const (
	Alive Fate = iota
	Killed
	Escaped
)

func (f Fate) String() string {
	switch f {
	case Alive:
		return "alive"
	case Killed:
		return "killed"
	case Escaped:
		return "escaped"
	default:
		return fmt.Sprintf("fate(%d)", uint8(f))
	}
}

// TowerKind decides which projectile a tower fires.
type TowerKind uint8

const (
	Basic TowerKind = iota
	Seeker
	TowerKindCount
)

func (k TowerKind) String() string {
	switch k {
	case Basic:
		return "basic"
	case Seeker:
		return "seeker"
	default:
		return fmt.Sprintf("tower(%d)", uint8(k))
	}
}

func ParseTowerKind(s string) (TowerKind, error) {
	switch s {
	case "basic":
		return Basic, nil
	case "seeker":
		return Seeker, nil
	}
	return 0, fmt.Errorf("unknown tower kind %q", s)
}

// ProjectileKind returns the projectile type fired by towers of kind k.
func (k TowerKind) ProjectileKind() ProjectileKind {
	if k == Seeker {
		return Seeking
	}
	return Straight
}

type ProjectileKind uint8

const (
	Straight ProjectileKind = iota
	Seeking
)

func (k ProjectileKind) String() string {
	if k == Seeking {
		return "seeking"
	}
	return "straight"
}

package shooter

import "math"

// Snapshot contains the world state flattened into primitive fields.
// It is used for determinism checks and debug logging.
type Snapshot struct {
	Steps  int
	Score  int
	Lives  int
	Best   int
	Status string

	PlayerX, PlayerY float64

	// Each projectile is 3 values: ID, X, Y
	ProjectileCount int
	ProjectileData  []float64

	// Each enemy is 3 values: ID, X, Y
	EnemyCount int
	EnemyData  []float64

	NextID uint64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	projData := make([]float64, 0, len(w.projectiles)*3)
	for _, p := range w.projectiles {
		projData = append(projData, float64(p.ID), p.X, p.Y)
	}

	enemyData := make([]float64, 0, len(w.enemies)*3)
	for _, e := range w.enemies {
		enemyData = append(enemyData, float64(e.ID), e.X, e.Y)
	}

	return Snapshot{
		Steps:           w.steps,
		Score:           w.session.Score,
		Lives:           w.session.Lives,
		Best:            w.session.Best,
		Status:          w.session.Status.String(),
		PlayerX:         w.player.X,
		PlayerY:         w.player.Y,
		ProjectileCount: len(w.projectiles),
		ProjectileData:  projData,
		EnemyCount:      len(w.enemies),
		EnemyData:       enemyData,
		NextID:          w.nextID,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Steps)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Best)  //#nosec G115 -- hash computation
	for _, r := range snap.Status {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)

	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation
	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.EnemyCount) //#nosec G115 -- hash computation
	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.NextID

	return h
}

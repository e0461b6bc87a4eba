package game

// Snapshot is a read-only copy of what a frame needs to draw.
type Snapshot struct {
	Player    Body
	Obstacles []Body // active slots only, in pool order
	Score     int
	Frame     int
	GameOver  bool
}

// SnapshotInto fills dst, reusing its obstacle slice.
func (s *Simulation) SnapshotInto(dst *Snapshot) {
	dst.Player = s.player
	dst.Obstacles = dst.Obstacles[:0]
	for i := range s.obstacles {
		if s.obstacles[i].Active {
			dst.Obstacles = append(dst.Obstacles, s.obstacles[i])
		}
	}
	dst.Score = s.score
	dst.Frame = s.frame
	dst.GameOver = s.gameOver
}

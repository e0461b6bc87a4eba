package game

// Body is the player or one obstacle slot. X and Y are normalized device coordinates.
type Body struct {
	X, Y          float64
	Width, Height float64
	SpeedX        float64
	SpeedY        float64
	Active        bool
}

// Rect returns the collision box of b.
func (b Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Simulation owns the player and the obstacle pool and advances them one
// frame per Step. It is not safe for concurrent use; the owner serializes access.
type Simulation struct {
	Events *EventBus

	cfg       Config
	rng       *Rand
	seed      uint64
	fixedSeed bool

	player    Body
	obstacles []Body

	frame      int
	score      int
	finalScore int
	gameOver   bool
}

// NewSimulation builds a simulation and initializes it. cfg must be valid.
func NewSimulation(cfg Config) *Simulation {
	s := &Simulation{
		Events:    NewEventBus(),
		cfg:       cfg,
		rng:       NewRand(1),
		obstacles: make([]Body, cfg.Obstacles.Capacity),
	}
	s.Initialize()
	return s
}

// SetSeed pins the RNG seed used by every later Initialize.
// A zero seed restores entropy seeding.
func (s *Simulation) SetSeed(seed uint64) {
	s.seed = seed
	s.fixedSeed = seed != 0
	s.rng.Seed(s.nextSeed())
}

func (s *Simulation) nextSeed() uint64 {
	if s.fixedSeed {
		return s.seed
	}
	return EntropySeed()
}

// Initialize resets the round: player back at the start, pool cleared,
// score and frame counter zeroed, RNG reseeded.
func (s *Simulation) Initialize() {
	p := s.cfg.Player
	s.player = Body{
		X:      p.StartX,
		Y:      p.StartY,
		Width:  p.Width,
		Height: p.Height,
		SpeedX: p.Speed,
		Active: true,
	}
	s.rng.Seed(s.nextSeed())
	for i := range s.obstacles {
		s.obstacles[i].Active = false
	}
	s.score = 0
	s.finalScore = 0
	s.frame = 0
	s.gameOver = false
}

// Step advances the simulation by one frame. It does nothing once the game is over.
func (s *Simulation) Step() {
	if s.gameOver {
		return
	}
	s.frame++

	anyActive := false
	player := s.player.Rect()
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.Active {
			continue
		}
		anyActive = true
		o.Y += o.SpeedY

		if Overlaps(player, o.Rect()) {
			s.gameOver = true
			s.finalScore = s.score
			s.Events.Emit(Event{Type: EventGameOver, Slot: i, Score: s.finalScore})
			return
		}

		if o.Y < s.cfg.Obstacles.ExitY {
			o.Active = false
			s.score += s.cfg.Scoring.Reward
			s.Events.Emit(Event{Type: EventObstacleCleared, Slot: i, Score: s.score})
		}
	}

	if !anyActive || s.frame%s.cfg.Spawn.Interval == 0 {
		s.Spawn()
	}
	if s.frame%s.cfg.Spawn.RandomEvery == 0 && s.rng.Range(0, 100) < s.cfg.Spawn.RandomChance {
		s.Spawn()
	}
}

// Spawn activates the lowest free slot. It reports false when the pool is full.
func (s *Simulation) Spawn() bool {
	oc := s.cfg.Obstacles
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Active {
			continue
		}
		*o = Body{
			X:      s.rng.RangeF(oc.MinX, oc.MaxX),
			Y:      oc.SpawnY,
			Width:  oc.Width,
			Height: oc.Height,
			SpeedY: -(oc.BaseSpeed + float64(s.score)/1000*oc.SpeedPer1000),
			Active: true,
		}
		s.Events.Emit(Event{Type: EventObstacleSpawned, Slot: i, Score: s.score})
		return true
	}
	return false
}

// MovePlayer shifts the player one step sideways. When the box would cross
// the screen edge the player is snapped to edge plus a fifth of its width.
func (s *Simulation) MovePlayer(dir Direction) {
	if s.gameOver || !s.player.Active {
		return
	}
	p := &s.player
	switch dir {
	case Left:
		p.X -= p.SpeedX
		if p.X-p.Width/2 < -1 {
			p.X = -1 + p.Width/5
		}
	case Right:
		p.X += p.SpeedX
		if p.X+p.Width/2 > 1 {
			p.X = 1 - p.Width/5
		}
	}
}

func (s *Simulation) Player() Body        { return s.player }
func (s *Simulation) Score() int          { return s.score }
func (s *Simulation) FinalScore() int     { return s.finalScore }
func (s *Simulation) Frame() int          { return s.frame }
func (s *Simulation) GameOver() bool      { return s.gameOver }
func (s *Simulation) Capacity() int       { return len(s.obstacles) }
func (s *Simulation) Config() Config      { return s.cfg }
func (s *Simulation) Obstacle(i int) Body { return s.obstacles[i] }

// SetObstacle overwrites slot i. Used to stage scenarios.
func (s *Simulation) SetObstacle(i int, b Body) { s.obstacles[i] = b }

// ActiveObstacles counts the occupied slots.
func (s *Simulation) ActiveObstacles() int {
	n := 0
	for i := range s.obstacles {
		if s.obstacles[i].Active {
			n++
		}
	}
	return n
}

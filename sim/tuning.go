package sim

// Tuning holds the world constants for one session. Values are expressed in
// world units and seconds; a level file may override any subset of them.
type Tuning struct {
	// Gravity is the downward acceleration in units/s^2. There is no
	// terminal-velocity cap; fall speed grows until a landing zeroes it.
	Gravity float64 `yaml:"gravity"`
	// MoveAccel is the horizontal control acceleration in units/s^2.
	MoveAccel float64 `yaml:"move_accel"`
	// MaxSpeed bounds |vx| in units/s.
	MaxSpeed float64 `yaml:"max_speed"`
	// GroundFriction is the grounded deceleration toward zero in units/s^2.
	GroundFriction float64 `yaml:"ground_friction"`
	// AirDamping multiplies vx once per 1/60 s while airborne. Applied as
	// pow(AirDamping, dt*60) so a zero dt leaves velocity untouched.
	AirDamping float64 `yaml:"air_damping"`
	// JumpSpeed is the upward launch speed in units/s.
	JumpSpeed float64 `yaml:"jump_speed"`

	// CameraRate is the exponential follow rate in 1/s.
	CameraRate float64 `yaml:"camera_rate"`
	// CameraLead places the actor this many units right of the viewport's
	// left edge once the camera has settled.
	CameraLead float64 `yaml:"camera_lead"`

	// BroadPhaseRadius skips platforms whose center is farther than this
	// from the actor's previous center on either axis.
	BroadPhaseRadius float64 `yaml:"broad_phase_radius"`
	// MaxDT caps the per-tick time delta so fast actors cannot step over
	// thin platforms on a long frame.
	MaxDT float64 `yaml:"max_dt"`

	ActorWidth  float64 `yaml:"actor_width"`
	ActorHeight float64 `yaml:"actor_height"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:          1800,
		MoveAccel:        1800,
		MaxSpeed:         260,
		GroundFriction:   1400,
		AirDamping:       0.98,
		JumpSpeed:        720,
		CameraRate:       8,
		CameraLead:       426,
		BroadPhaseRadius: 400,
		MaxDT:            1.0 / 30.0,
		ActorWidth:       28,
		ActorHeight:      44,
	}
}

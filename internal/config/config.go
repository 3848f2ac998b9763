package config

const (
	WindowTitle = "Star Oracle"

	DefaultWidth  = 1280
	DefaultHeight = 800

	// Particle field
	ParticleCount     = 400
	DriftSpeed        = 0.1 // velocity components span [-DriftSpeed/2, DriftSpeed/2)
	MinParticleSize   = 0.5
	ParticleSizeRange = 1.5
	MinParticleAlpha  = 0.2
	ParticleAlphaSpan = 0.8
	GoldShare         = 0.3

	// Motion parameters
	RingRadiusMin      = 250
	RingRadiusSpan     = 150
	RingSmoothing      = 0.01
	RingAngularSpeed   = 0.0005 // rad per frame
	SkyRotationSpeed   = 0.0001 // rad per ms, draw-time only
	FocusRadius        = 100
	FocusSmoothing     = 0.03
	FocusAngularSpeed  = 0.001 // rad per ms
	ScatterFactor      = 2
	HyperdriveSpeed    = 10
	TwinkleSpeed       = 0.005 // rad per ms
	TwinkleFloor       = 0.6
	TwinkleDepth       = 0.4
	JitterChance       = 0.05
	JitterScale        = 1.5
	GlowSizeThreshold  = 1.5
	GlowRadius         = 4
	TransitionFlashFor = 1000 // ms

	// Silent ritual
	SilentTarget = 100

	// Scene layout, in logical pixels
	RuneCircleSize   = 288
	ProgressRadius   = 100
	CardWidth        = 224
	CardHeight       = 288
	CoreCardWidth    = 256
	CoreCardHeight   = 320
	CardGap          = 48
	CardGapStacked   = 32
	StackBreakpoint  = 768
	RestartWidth     = 200
	RestartHeight    = 44
	BookMaxWidth     = 896
	BookAspect       = 1.6
	SceneFadeIn      = 1000 // ms
	IdleCaptionDelay = 1000 // ms
)

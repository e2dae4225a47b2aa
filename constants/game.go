package constants

import "time"

// Game Loop Timing
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// FrameUpdateInterval is the wall-clock budget of one tick (~60 FPS)
	FrameUpdateInterval = time.Second / TicksPerSecond
)

// World Geometry (world units, origin top-left)
const (
	WorldWidth  = 1024
	WorldHeight = 600

	// SurfaceLineY is the water line; the hook never rises above it
	SurfaceLineY = 50.0

	// FloorMargin keeps the hook above the bottom edge
	FloorMargin = 30.0

	// RodTipX is where the fishing line leaves the boat
	RodTipX = WorldWidth / 2

	// HookInitialX is the anchor the hook returns to after every resolved catch
	HookInitialX = WorldWidth - 150.0

	// AnchorMargin bounds the controlled anchor to [AnchorMargin, WorldWidth-AnchorMargin]
	AnchorMargin = 10.0
)

// Hook Kinematics (world units per tick)
const (
	AutoSinkSpeed   = 0.5
	PullSpeed       = 10.0
	HorizontalSpeed = 6.0

	// AnalogSmoothing is the low-pass factor applied to potentiometer targets
	AnalogSmoothing = 0.2

	// AnalogMax is the upper bound of a potentiometer reading
	AnalogMax = 1023

	// SwayAmplitude and SwayRate describe rope slack oscillation
	SwayAmplitude = 80.0
	SwayRate      = 0.01

	HookWidth  = 40.0
	HookHeight = 40.0
)

// Fishing Line Rendering
const (
	RopeAmplitude     = 10.0
	RopeFrequency     = 0.1
	RopePhaseRate     = 0.1
	RopeSegmentLength = 10.0
)

// Fish
const (
	// FishCount is the fixed population allocated at startup
	FishCount = 7

	FishWidth  = 80.0
	FishHeight = 40.0

	FishMinSpeed = 1.5
	FishMaxSpeed = 3.5

	// FishLaneTop and FishLaneBottom bound the spawn lane
	FishLaneTop    = SurfaceLineY + 100
	FishLaneBottom = WorldHeight - 100

	// FishExitMargin is how far past the right edge a fish swims before recycling
	FishExitMargin = 100.0

	// FishAnimTicks is the number of ticks between animation frames
	FishAnimTicks  = 20
	FishAnimFrames = 2

	// FishVariants is the number of distinct fish sprites
	FishVariants = 2

	// FishValue is the score delta of one resolved catch
	FishValue = 1

	// Towed fish offset relative to the hook center
	TowOffsetX = 5.0
	TowOffsetY = -10.0
)

// Feedback
const (
	// FeedbackTicks is how long the correct/wrong message stays on screen (1.5s)
	FeedbackTicks = 90
)

package constants

import "time"

// Audio Output
const (
	// SampleRate is the speaker sample rate in Hz
	SampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Catch Sound Timing (short blip when the hook bites)
const (
	CatchSoundDuration = 90 * time.Millisecond
	CatchSoundAttack   = 5 * time.Millisecond
	CatchSoundRelease  = 60 * time.Millisecond
)

// Correct Sound Timing (two-note chime)
const (
	CorrectSoundNote1Duration = 80 * time.Millisecond
	CorrectSoundNote2Duration = 280 * time.Millisecond
	CorrectSoundAttack        = 5 * time.Millisecond
	CorrectSoundNote1Release  = 40 * time.Millisecond
	CorrectSoundNote2Release  = 200 * time.Millisecond
)

// Wrong Sound Timing (harsh buzz)
const (
	WrongSoundDuration = 250 * time.Millisecond
	WrongSoundAttack   = 5 * time.Millisecond
	WrongSoundRelease  = 80 * time.Millisecond
)

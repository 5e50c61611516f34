package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundStep1
	SoundStep2
	SoundStep3
	SoundStep4
	SoundStep5
	// Progression sounds
	SoundKey
	SoundUnlock
	SoundDeny
	SoundDoor
	// UI sounds
	SoundMenuSelect
)

// StepSounds are cycled through while the player walks
var StepSounds = []SoundID{SoundStep1, SoundStep2, SoundStep3, SoundStep4, SoundStep5}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump:       "audio/sfx/jump.wav",
			SoundStep1:      "audio/sfx/step1.wav",
			SoundStep2:      "audio/sfx/step2.wav",
			SoundStep3:      "audio/sfx/step3.wav",
			SoundStep4:      "audio/sfx/step4.wav",
			SoundStep5:      "audio/sfx/step5.wav",
			SoundKey:        "audio/sfx/key.wav",
			SoundUnlock:     "audio/sfx/unlock.wav",
			SoundDeny:       "audio/sfx/deny.wav",
			SoundDoor:       "audio/sfx/door.wav",
			SoundMenuSelect: "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundStep1: 0.4,
			SoundStep2: 0.4,
			SoundStep3: 0.4,
			SoundStep4: 0.4,
			SoundStep5: 0.4,
		},
	}
}

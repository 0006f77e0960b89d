package speech

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWakeDetectorExactPhrases(t *testing.T) {
	d := NewWakeDetector()
	require.True(t, d.Match("Hey Dori, come here", "en"))
	require.True(t, d.Match("hello dori", "en"))
	require.True(t, d.Match("도리야 이리 와봐", "ko"))
	require.True(t, d.Match("ドリ、こっち", "ja"))
	require.False(t, d.Match("what a nice day", "en"))
	require.False(t, d.Match("", "en"))
}

func TestWakeDetectorFuzzyName(t *testing.T) {
	d := NewWakeDetector()
	// One edit away from the robot's name still wakes it.
	require.True(t, d.Match("hey dory", "en"))
	require.True(t, d.Match("tori come here", "en"))
	require.False(t, d.Match("the story continues", "en"))
}

func TestWakeDetectorUnknownLanguageFallsBackToEnglish(t *testing.T) {
	d := NewWakeDetector()
	require.True(t, d.Match("hey dori", "de"))
}

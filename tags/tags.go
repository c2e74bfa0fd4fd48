package tags

import "github.com/yohamta/donburi"

var (
	Character   = donburi.NewTag().SetName("Character")
	Platform    = donburi.NewTag().SetName("Platform")
	FrameBuffer = donburi.NewTag().SetName("FrameBuffer")
)

// Resolv tags for the geometric cross-check
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
)

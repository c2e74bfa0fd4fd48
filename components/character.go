package components

import (
	"github.com/automoto/molasses-mike/shared/motion"
	"github.com/automoto/molasses-mike/shared/roll"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	State motion.State
	Last  motion.Result // outcome of the latest step, including the pose to draw
}

var Character = donburi.NewComponentType[CharacterData]()

type RollData struct {
	roll.State
}

var Roll = donburi.NewComponentType[RollData]()

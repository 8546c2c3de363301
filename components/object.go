package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's box in the collision space. Data points back
// at the owning *donburi.Entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broad-phase grid every Object lives in.
var Space = donburi.NewComponentType[resolv.Space]()
